package service

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/auth"
	"dispatch/internal/domain"
	"dispatch/internal/redis"
	"dispatch/internal/repository"
)

// riderLockTTL bounds how long a rider stays locked if the process dies
// mid-assignment.
const riderLockTTL = 10 * time.Second

// DispatchService coordinates rider-order assignment. Assignment is the only
// operation that changes an order and its rider together, so both writes run
// inside one transaction, guarded by a short-lived rider lock.
type DispatchService struct {
	riderRepo repository.RiderRepository
	orderRepo repository.OrderRepository
	lockStore redis.LockStoreInterface
	tx        repository.TxRunner
}

// NewDispatchService creates a new DispatchService.
func NewDispatchService(
	riderRepo repository.RiderRepository,
	orderRepo repository.OrderRepository,
	lockStore redis.LockStoreInterface,
	tx repository.TxRunner,
) *DispatchService {
	return &DispatchService{
		riderRepo: riderRepo,
		orderRepo: orderRepo,
		lockStore: lockStore,
		tx:        tx,
	}
}

// AssignOrder assigns an order to an Available rider. On success the order
// becomes Assigned with the rider recorded, the order id is appended to the
// rider's history exactly once, and the rider becomes Busy. A rider who is
// not Available is left untouched.
func (s *DispatchService) AssignOrder(ctx context.Context, orderID, riderID string) (*domain.Order, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}
	if riderID == "" {
		return nil, ErrMissingRiderID
	}

	oid, err := parseID(orderID)
	if err != nil {
		return nil, err
	}
	rid, err := parseID(riderID)
	if err != nil {
		return nil, err
	}

	acquired, err := s.lockStore.AcquireRiderLock(ctx, riderID, riderLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrRiderLocked
	}
	defer s.lockStore.ReleaseRiderLock(context.WithoutCancel(ctx), riderID)

	rider, err := s.riderRepo.GetByID(ctx, rid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}
	if rider.CurrentStatus != domain.RiderStatusAvailable {
		return nil, ErrRiderNotAvailable
	}

	if _, err := s.orderRepo.GetByID(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var assigned *domain.Order
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.Assign(ctx, oid, rid)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := s.riderRepo.AppendOrder(ctx, rid, oid); err != nil {
			return err
		}
		if err := s.riderRepo.UpdateStatus(ctx, rid, domain.RiderStatusBusy); err != nil {
			return err
		}
		assigned = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// UpdateOrderStatus lets the assigned rider move an order through its
// lifecycle. When the order reaches a terminal status the rider is released
// back to Available in the same transaction.
func (s *DispatchService) UpdateOrderStatus(ctx context.Context, riderID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, ErrMissingStatus
	}
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	rid, err := parseID(riderID)
	if err != nil {
		return nil, err
	}
	oid, err := parseID(orderID)
	if err != nil {
		return nil, err
	}

	// A rider may only act on their own behalf.
	if principal.Role == auth.RoleRider && principal.ID != riderID {
		return nil, ErrRiderMismatch
	}

	if _, err := s.riderRepo.GetByID(ctx, rid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	var updated *domain.Order
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.UpdateStatus(ctx, oid, status, "")
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if status.Terminal() {
			if err := s.riderRepo.UpdateStatus(ctx, rid, domain.RiderStatusAvailable); err != nil {
				return err
			}
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
