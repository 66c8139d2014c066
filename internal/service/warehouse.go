package service

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// WarehouseService handles warehouse operations.
type WarehouseService struct {
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseService creates a new WarehouseService.
func NewWarehouseService(warehouseRepo repository.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouseRepo: warehouseRepo}
}

// CreateWarehouseRequest contains the parameters for warehouse creation.
type CreateWarehouseRequest struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// Create persists a new warehouse.
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*domain.Warehouse, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}
	if req.Name == "" || req.Address == "" {
		return nil, ErrMissingWarehouseFields
	}

	now := time.Now()
	warehouse := &domain.Warehouse{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Get retrieves a warehouse by ID.
func (s *WarehouseService) Get(ctx context.Context, id string) (*domain.Warehouse, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	warehouse, err := s.warehouseRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}
	return warehouse, nil
}

// List retrieves all warehouses, newest first.
func (s *WarehouseService) List(ctx context.Context) ([]*domain.Warehouse, error) {
	return s.warehouseRepo.GetAll(ctx)
}

// UpdateWarehouseRequest contains the fields a warehouse update may change.
// Nil fields are left untouched.
type UpdateWarehouseRequest struct {
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
}

// Update applies a partial update to a warehouse.
func (s *WarehouseService) Update(ctx context.Context, id string, req UpdateWarehouseRequest) (*domain.Warehouse, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	current, err := s.warehouseRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.Latitude != nil {
		current.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		current.Longitude = *req.Longitude
	}

	warehouse, err := s.warehouseRepo.Update(ctx, oid, current)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}
	return warehouse, nil
}

// Delete removes a warehouse.
func (s *WarehouseService) Delete(ctx context.Context, id string) error {
	if _, err := requirePrincipal(ctx); err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.warehouseRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWarehouseNotFound
		}
		return err
	}
	return nil
}
