package tests

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/auth"
	"dispatch/internal/domain"
	"dispatch/internal/service"
)

// ──────────────────────────────────────────────
// ORDER ASSIGNMENT
// ──────────────────────────────────────────────

func newDispatchFixture() (*service.DispatchService, *MockRiderRepository, *MockOrderRepository, *MockLockStore) {
	riderRepo := NewMockRiderRepository()
	orderRepo := NewMockOrderRepository()
	lockStore := NewMockLockStore()
	tx := NewPassthroughTxRunner()
	svc := service.NewDispatchService(riderRepo, orderRepo, lockStore, tx)
	return svc, riderRepo, orderRepo, lockStore
}

func adminContext() context.Context {
	return auth.NewContext(context.Background(), auth.Principal{
		ID:   primitive.NewObjectID().Hex(),
		Role: auth.RoleUser,
	})
}

func TestAssignOrder_Success(t *testing.T) {
	t.Parallel()

	svc, riderRepo, orderRepo, _ := newDispatchFixture()

	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		Name:          "Rider A",
		CurrentStatus: domain.RiderStatusAvailable,
	}
	riderRepo.AddRider(rider)

	order := &domain.Order{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		Status: domain.OrderStatusPending,
	}
	orderRepo.AddOrder(order)

	assigned, err := svc.AssignOrder(adminContext(), order.ID.Hex(), rider.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assigned.Status != domain.OrderStatusAssigned {
		t.Errorf("expected order status %s, got %s", domain.OrderStatusAssigned, assigned.Status)
	}
	if assigned.RiderID == nil || *assigned.RiderID != rider.ID {
		t.Error("order does not record the assigned rider")
	}

	storedRider := riderRepo.GetRider(rider.ID)
	if storedRider.CurrentStatus != domain.RiderStatusBusy {
		t.Errorf("expected rider status %s, got %s", domain.RiderStatusBusy, storedRider.CurrentStatus)
	}
	if len(storedRider.Orders) != 1 || storedRider.Orders[0] != order.ID {
		t.Errorf("expected rider order list [%s], got %v", order.ID.Hex(), storedRider.Orders)
	}
}

func TestAssignOrder_RiderNotAvailable_NothingChanges(t *testing.T) {
	t.Parallel()

	statuses := []domain.RiderStatus{
		domain.RiderStatusBusy,
		domain.RiderStatusInactive,
		domain.RiderStatusSuspended,
	}

	for _, status := range statuses {
		svc, riderRepo, orderRepo, _ := newDispatchFixture()

		rider := &domain.Rider{
			ID:            primitive.NewObjectID(),
			CurrentStatus: status,
		}
		riderRepo.AddRider(rider)

		order := &domain.Order{
			ID:     primitive.NewObjectID(),
			UserID: primitive.NewObjectID(),
			Status: domain.OrderStatusPending,
		}
		orderRepo.AddOrder(order)

		_, err := svc.AssignOrder(adminContext(), order.ID.Hex(), rider.ID.Hex())
		if !errors.Is(err, service.ErrRiderNotAvailable) {
			t.Errorf("status %s: expected ErrRiderNotAvailable, got %v", status, err)
		}

		storedOrder := orderRepo.GetOrder(order.ID)
		if storedOrder.Status != domain.OrderStatusPending || storedOrder.RiderID != nil {
			t.Errorf("status %s: order mutated on failed assignment", status)
		}
		storedRider := riderRepo.GetRider(rider.ID)
		if storedRider.CurrentStatus != status || len(storedRider.Orders) != 0 {
			t.Errorf("status %s: rider mutated on failed assignment", status)
		}
	}
}

func TestAssignOrder_RiderLocked(t *testing.T) {
	t.Parallel()

	svc, riderRepo, orderRepo, lockStore := newDispatchFixture()

	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		CurrentStatus: domain.RiderStatusAvailable,
	}
	riderRepo.AddRider(rider)

	order := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	orderRepo.AddOrder(order)

	lockStore.HoldLock(rider.ID.Hex())

	_, err := svc.AssignOrder(adminContext(), order.ID.Hex(), rider.ID.Hex())
	if !errors.Is(err, service.ErrRiderLocked) {
		t.Fatalf("expected ErrRiderLocked, got %v", err)
	}
}

func TestAssignOrder_UnknownRiderAndOrder(t *testing.T) {
	t.Parallel()

	svc, riderRepo, orderRepo, _ := newDispatchFixture()

	order := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	orderRepo.AddOrder(order)

	_, err := svc.AssignOrder(adminContext(), order.ID.Hex(), primitive.NewObjectID().Hex())
	if !errors.Is(err, service.ErrRiderNotFound) {
		t.Errorf("expected ErrRiderNotFound, got %v", err)
	}

	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		CurrentStatus: domain.RiderStatusAvailable,
	}
	riderRepo.AddRider(rider)

	_, err = svc.AssignOrder(adminContext(), primitive.NewObjectID().Hex(), rider.ID.Hex())
	if !errors.Is(err, service.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestAssignOrder_MissingRiderID(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newDispatchFixture()

	_, err := svc.AssignOrder(adminContext(), primitive.NewObjectID().Hex(), "")
	if !errors.Is(err, service.ErrMissingRiderID) {
		t.Fatalf("expected ErrMissingRiderID, got %v", err)
	}
}

func TestAssignOrder_RequiresAuthentication(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newDispatchFixture()

	_, err := svc.AssignOrder(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	if !errors.Is(err, service.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAssignOrder_ConcurrentAssignments_OnlyOneWins(t *testing.T) {
	t.Parallel()

	svc, riderRepo, orderRepo, _ := newDispatchFixture()

	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		CurrentStatus: domain.RiderStatusAvailable,
	}
	riderRepo.AddRider(rider)

	orderA := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	orderB := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	orderRepo.AddOrder(orderA)
	orderRepo.AddOrder(orderB)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, orderID := range []string{orderA.ID.Hex(), orderB.ID.Hex()} {
		wg.Add(1)
		go func(i int, orderID string) {
			defer wg.Done()
			_, results[i] = svc.AssignOrder(adminContext(), orderID, rider.ID.Hex())
		}(i, orderID)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else if !errors.Is(err, service.ErrRiderLocked) && !errors.Is(err, service.ErrRiderNotAvailable) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly 1 successful assignment, got %d", successes)
	}

	storedRider := riderRepo.GetRider(rider.ID)
	if len(storedRider.Orders) != 1 {
		t.Errorf("expected rider to hold exactly 1 order, got %d", len(storedRider.Orders))
	}
}

// ──────────────────────────────────────────────
// RIDER-DRIVEN ORDER STATUS UPDATES
// ──────────────────────────────────────────────

func TestUpdateOrderStatus_TerminalStatusReleasesRider(t *testing.T) {
	t.Parallel()

	for _, status := range []domain.OrderStatus{domain.OrderStatusDelivered, domain.OrderStatusCancelled} {
		svc, riderRepo, orderRepo, _ := newDispatchFixture()

		rider := &domain.Rider{
			ID:            primitive.NewObjectID(),
			CurrentStatus: domain.RiderStatusBusy,
		}
		riderRepo.AddRider(rider)

		rid := rider.ID
		order := &domain.Order{
			ID:      primitive.NewObjectID(),
			RiderID: &rid,
			Status:  domain.OrderStatusInTransit,
		}
		orderRepo.AddOrder(order)

		ctx := auth.NewContext(context.Background(), auth.Principal{ID: rider.ID.Hex(), Role: auth.RoleRider})
		updated, err := svc.UpdateOrderStatus(ctx, rider.ID.Hex(), order.ID.Hex(), status)
		if err != nil {
			t.Fatalf("status %s: unexpected error: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("expected order status %s, got %s", status, updated.Status)
		}

		storedRider := riderRepo.GetRider(rider.ID)
		if storedRider.CurrentStatus != domain.RiderStatusAvailable {
			t.Errorf("status %s: expected rider released to Available, got %s", status, storedRider.CurrentStatus)
		}
	}
}

func TestUpdateOrderStatus_NonTerminalKeepsRiderBusy(t *testing.T) {
	t.Parallel()

	svc, riderRepo, orderRepo, _ := newDispatchFixture()

	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		CurrentStatus: domain.RiderStatusBusy,
	}
	riderRepo.AddRider(rider)

	rid := rider.ID
	order := &domain.Order{
		ID:      primitive.NewObjectID(),
		RiderID: &rid,
		Status:  domain.OrderStatusAssigned,
	}
	orderRepo.AddOrder(order)

	ctx := auth.NewContext(context.Background(), auth.Principal{ID: rider.ID.Hex(), Role: auth.RoleRider})
	_, err := svc.UpdateOrderStatus(ctx, rider.ID.Hex(), order.ID.Hex(), domain.OrderStatusInTransit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	storedRider := riderRepo.GetRider(rider.ID)
	if storedRider.CurrentStatus != domain.RiderStatusBusy {
		t.Errorf("expected rider to stay Busy, got %s", storedRider.CurrentStatus)
	}
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newDispatchFixture()

	_, err := svc.UpdateOrderStatus(adminContext(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "Misplaced")
	if !errors.Is(err, service.ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestUpdateOrderStatus_RiderCannotActForAnother(t *testing.T) {
	t.Parallel()

	svc, riderRepo, orderRepo, _ := newDispatchFixture()

	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		CurrentStatus: domain.RiderStatusBusy,
	}
	riderRepo.AddRider(rider)

	order := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusAssigned}
	orderRepo.AddOrder(order)

	other := auth.NewContext(context.Background(), auth.Principal{
		ID:   primitive.NewObjectID().Hex(),
		Role: auth.RoleRider,
	})
	_, err := svc.UpdateOrderStatus(other, rider.ID.Hex(), order.ID.Hex(), domain.OrderStatusInTransit)
	if !errors.Is(err, service.ErrRiderMismatch) {
		t.Fatalf("expected ErrRiderMismatch, got %v", err)
	}
}

// The full journey of one rider across two orders.
func TestDispatch_RiderLifecycleAcrossTwoOrders(t *testing.T) {
	t.Parallel()

	svc, riderRepo, orderRepo, _ := newDispatchFixture()

	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		CurrentStatus: domain.RiderStatusAvailable,
	}
	riderRepo.AddRider(rider)

	first := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	second := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	orderRepo.AddOrder(first)
	orderRepo.AddOrder(second)

	riderCtx := auth.NewContext(context.Background(), auth.Principal{ID: rider.ID.Hex(), Role: auth.RoleRider})

	if _, err := svc.AssignOrder(adminContext(), first.ID.Hex(), rider.ID.Hex()); err != nil {
		t.Fatalf("first assignment failed: %v", err)
	}

	// While busy, the second assignment must fail.
	if _, err := svc.AssignOrder(adminContext(), second.ID.Hex(), rider.ID.Hex()); !errors.Is(err, service.ErrRiderNotAvailable) {
		t.Fatalf("expected ErrRiderNotAvailable during delivery, got %v", err)
	}

	if _, err := svc.UpdateOrderStatus(riderCtx, rider.ID.Hex(), first.ID.Hex(), domain.OrderStatusDelivered); err != nil {
		t.Fatalf("delivery failed: %v", err)
	}

	// Released, the rider can take the next order.
	if _, err := svc.AssignOrder(adminContext(), second.ID.Hex(), rider.ID.Hex()); err != nil {
		t.Fatalf("second assignment failed: %v", err)
	}

	storedRider := riderRepo.GetRider(rider.ID)
	if len(storedRider.Orders) != 2 {
		t.Errorf("expected 2 orders in rider history, got %d", len(storedRider.Orders))
	}
}
