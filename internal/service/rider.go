package service

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/auth"
	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// RiderService handles rider account operations.
type RiderService struct {
	riderRepo repository.RiderRepository
	orderRepo repository.OrderRepository
	tokens    *auth.Manager
}

// NewRiderService creates a new RiderService.
func NewRiderService(riderRepo repository.RiderRepository, orderRepo repository.OrderRepository, tokens *auth.Manager) *RiderService {
	return &RiderService{
		riderRepo: riderRepo,
		orderRepo: orderRepo,
		tokens:    tokens,
	}
}

// RegisterRiderRequest contains the parameters for rider registration.
type RegisterRiderRequest struct {
	Name           string
	Phone          string
	VehicleDetails string
	Email          string
	Password       string
	Image          string
	DateOfBirth    string
	Gender         string
	Addresses      []domain.Address
}

// Register creates a rider account. Email and phone collisions are checked
// with a single combined lookup before the write.
func (s *RiderService) Register(ctx context.Context, req RegisterRiderRequest) (*AuthResult, error) {
	if req.Name == "" || req.Phone == "" || req.VehicleDetails == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingRiderFields
	}

	existing, err := s.riderRepo.GetByContact(ctx, req.Email, req.Phone)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRiderContactTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	rider := &domain.Rider{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Password:       hash,
		VehicleDetails: req.VehicleDetails,
		Image:          req.Image,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Addresses:      req.Addresses,
		CurrentStatus:  domain.RiderStatusAvailable,
		JoinDate:       time.Now(),
	}

	if err := s.riderRepo.Create(ctx, rider); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRiderContactTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(rider.ID.Hex(), auth.RoleRider)
	if err != nil {
		return nil, err
	}

	rider.Password = ""
	return &AuthResult{Rider: rider, Token: token}, nil
}

// Login checks rider credentials and issues a time-bounded token.
func (s *RiderService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	rider, err := s.riderRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(rider.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(rider.ID.Hex(), auth.RoleRider)
	if err != nil {
		return nil, err
	}

	rider.Password = ""
	return &AuthResult{Rider: rider, Token: token}, nil
}

// RiderDetail is a rider with the referenced orders expanded.
type RiderDetail struct {
	*domain.Rider
	OrderDocs []*domain.Order `json:"orderDetails,omitempty"`
}

// Get retrieves a rider and expands their orders.
func (s *RiderService) Get(ctx context.Context, id string) (*RiderDetail, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rider, err := s.riderRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	orders, err := s.orderRepo.GetByIDs(ctx, rider.Orders)
	if err != nil {
		return nil, err
	}

	rider.Password = ""
	return &RiderDetail{Rider: rider, OrderDocs: orders}, nil
}

// List retrieves all riders without password hashes.
func (s *RiderService) List(ctx context.Context) ([]*domain.Rider, error) {
	riders, err := s.riderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range riders {
		r.Password = ""
	}
	return riders, nil
}

// Orders retrieves the orders referenced by a rider's order list.
func (s *RiderService) Orders(ctx context.Context, id string) ([]*domain.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rider, err := s.riderRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	return s.orderRepo.GetByIDs(ctx, rider.Orders)
}

// UpdateRiderRequest contains the optional fields of a rider update.
type UpdateRiderRequest struct {
	Name           *string
	Phone          *string
	Email          *string
	VehicleDetails *string
	Image          *string
	DateOfBirth    *string
	Gender         *string
	Addresses      *[]domain.Address
	Password       *string
	CurrentStatus  *domain.RiderStatus
}

// Update applies only the provided fields. Email or phone changes are
// checked against every other rider first.
func (s *RiderService) Update(ctx context.Context, id string, req UpdateRiderRequest) (*domain.Rider, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.riderRepo.GetByID(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	if req.Email != nil || req.Phone != nil {
		var email, phone string
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		taken, err := s.riderRepo.ContactTaken(ctx, oid, email, phone)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrRiderContactTaken
		}
	}

	if req.CurrentStatus != nil && !req.CurrentStatus.Valid() {
		return nil, ErrInvalidRiderStatus
	}

	patch := domain.RiderPatch{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		VehicleDetails: req.VehicleDetails,
		Image:          req.Image,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Addresses:      req.Addresses,
		CurrentStatus:  req.CurrentStatus,
	}

	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	rider, err := s.riderRepo.UpdateProfile(ctx, oid, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	rider.Password = ""
	return rider, nil
}

// UpdateStatus sets the rider availability through the dedicated status
// route. Busy is reserved for dispatch and rejected here.
func (s *RiderService) UpdateStatus(ctx context.Context, id string, status domain.RiderStatus) (*domain.Rider, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}
	if status == "" {
		return nil, ErrMissingStatus
	}
	if !status.Valid() {
		return nil, ErrInvalidRiderStatus
	}
	if status == domain.RiderStatusBusy {
		return nil, ErrRiderStatusReserved
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if err := s.riderRepo.UpdateStatus(ctx, oid, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	rider, err := s.riderRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	rider.Password = ""
	return rider, nil
}

// Delete removes a rider account. Orders still referencing the rider keep a
// dangling reference; they are not rewritten.
func (s *RiderService) Delete(ctx context.Context, id string) error {
	if _, err := requirePrincipal(ctx); err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.riderRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRiderNotFound
		}
		return err
	}
	return nil
}
