package service

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/auth"
	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// UserService handles user account operations.
type UserService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	tokens    *auth.Manager
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, orderRepo repository.OrderRepository, tokens *auth.Manager) *UserService {
	return &UserService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		tokens:    tokens,
	}
}

// RegisterUserRequest contains the parameters for user registration.
type RegisterUserRequest struct {
	FullName    string
	Email       string
	Phone       string
	Password    string
	DateOfBirth string
	Gender      string
	Image       string
	Addresses   []domain.Address
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	User  *domain.User  `json:"user,omitempty"`
	Rider *domain.Rider `json:"rider,omitempty"`
	Token string        `json:"token"`
}

// Register creates a user account, hashes the password, and issues a token.
// The stored hash is never echoed back.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*AuthResult, error) {
	if req.FullName == "" || req.Email == "" || req.Phone == "" || req.Password == "" || len(req.Addresses) == 0 {
		return nil, ErrMissingUserFields
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    hash,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Image:       req.Image,
		Addresses:   req.Addresses,
		CreatedAt:   time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index is the backstop for a concurrent registration
		// with the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID.Hex(), auth.RoleUser)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &AuthResult{User: user, Token: token}, nil
}

// Login checks credentials and issues a time-bounded token.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex(), auth.RoleUser)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &AuthResult{User: user, Token: token}, nil
}

// UserDetail is a user with the referenced orders expanded.
type UserDetail struct {
	*domain.User
	Orders []*domain.Order `json:"orders"`
}

// Get retrieves a user and expands their orders.
func (s *UserService) Get(ctx context.Context, id string) (*UserDetail, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	orders, err := s.orderRepo.GetByUserID(ctx, oid)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &UserDetail{User: user, Orders: orders}, nil
}

// List retrieves all users without password hashes.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

// UpdateProfileRequest contains the optional fields of a profile update.
// Email is rejected through this path.
type UpdateProfileRequest struct {
	FullName    *string
	Phone       *string
	DateOfBirth *string
	Gender      *string
	Image       *string
	Addresses   *[]domain.Address
	Email       *string
}

// UpdateProfile applies only the provided fields.
func (s *UserService) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*domain.User, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}
	if req.Email != nil {
		return nil, ErrEmailImmutable
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateProfile(ctx, oid, domain.UserPatch{
		FullName:    req.FullName,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Image:       req.Image,
		Addresses:   req.Addresses,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// UpdatePassword verifies the current password and replaces the hash.
func (s *UserService) UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if _, err := requirePrincipal(ctx); err != nil {
		return err
	}
	if currentPassword == "" || newPassword == "" {
		return ErrMissingPasswordFields
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !auth.CheckPassword(user.Password, currentPassword) {
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, oid, hash)
}

// AddAddress appends a new address to the user's address list.
func (s *UserService) AddAddress(ctx context.Context, id string, addr domain.Address) (*domain.User, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.AddAddress(ctx, oid, addr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := requirePrincipal(ctx); err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
