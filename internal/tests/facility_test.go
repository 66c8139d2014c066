package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
	"dispatch/internal/service"
)

// ──────────────────────────────────────────────
// WAREHOUSES
// ──────────────────────────────────────────────

func TestWarehouseCreate_RequiresNameAndAddress(t *testing.T) {
	t.Parallel()

	svc := service.NewWarehouseService(NewMockWarehouseRepository())

	if _, err := svc.Create(adminContext(), service.CreateWarehouseRequest{Address: "1 Dock Rd"}); !errors.Is(err, service.ErrMissingWarehouseFields) {
		t.Errorf("missing name: expected ErrMissingWarehouseFields, got %v", err)
	}
	if _, err := svc.Create(adminContext(), service.CreateWarehouseRequest{Name: "North Hub"}); !errors.Is(err, service.ErrMissingWarehouseFields) {
		t.Errorf("missing address: expected ErrMissingWarehouseFields, got %v", err)
	}

	warehouse, err := svc.Create(adminContext(), service.CreateWarehouseRequest{
		Name:      "North Hub",
		Address:   "1 Dock Rd",
		Latitude:  12.97,
		Longitude: 77.59,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warehouse.ID.IsZero() || warehouse.CreatedAt.IsZero() {
		t.Error("warehouse not fully initialized")
	}
}

func TestWarehouseUpdate_PartialFields(t *testing.T) {
	t.Parallel()

	repo := NewMockWarehouseRepository()
	svc := service.NewWarehouseService(repo)

	warehouse := &domain.Warehouse{
		ID:       primitive.NewObjectID(),
		Name:     "North Hub",
		Address:  "1 Dock Rd",
		Latitude: 12.97,
	}
	repo.AddWarehouse(warehouse)

	name := "North Hub 2"
	updated, err := svc.Update(adminContext(), warehouse.ID.Hex(), service.UpdateWarehouseRequest{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "North Hub 2" {
		t.Errorf("expected name updated, got %s", updated.Name)
	}
	if updated.Address != "1 Dock Rd" || updated.Latitude != 12.97 {
		t.Error("untouched fields were modified")
	}
}

func TestWarehouseGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := service.NewWarehouseService(NewMockWarehouseRepository())

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, service.ErrWarehouseNotFound) {
		t.Fatalf("expected ErrWarehouseNotFound, got %v", err)
	}

	_, err = svc.Get(context.Background(), "not-a-hex-id")
	if !errors.Is(err, service.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

// ──────────────────────────────────────────────
// COUPONS
// ──────────────────────────────────────────────

func TestCouponCreate_DefaultsStatusActive(t *testing.T) {
	t.Parallel()

	svc := service.NewCouponService(NewMockCouponRepository())

	if _, err := svc.Create(adminContext(), service.CreateCouponRequest{DiscountType: domain.DiscountTypeFixed, DiscountAmount: 20}); !errors.Is(err, service.ErrMissingCouponFields) {
		t.Errorf("missing code: expected ErrMissingCouponFields, got %v", err)
	}

	coupon, err := svc.Create(adminContext(), service.CreateCouponRequest{
		Code:           "SAVE20",
		DiscountType:   domain.DiscountTypeFixed,
		DiscountAmount: 20,
		EndDate:        time.Now().Add(30 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coupon.Status != "active" {
		t.Errorf("expected default status active, got %q", coupon.Status)
	}
}

func TestCouponUpdate_PartialFields(t *testing.T) {
	t.Parallel()

	repo := NewMockCouponRepository()
	svc := service.NewCouponService(repo)

	coupon := &domain.Coupon{
		ID:             primitive.NewObjectID(),
		Code:           "SAVE20",
		DiscountType:   domain.DiscountTypePercentage,
		DiscountAmount: 20,
		Status:         "active",
	}
	repo.AddCoupon(coupon)

	status := "expired"
	updated, err := svc.Update(adminContext(), coupon.ID.Hex(), service.UpdateCouponRequest{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Status != "expired" {
		t.Errorf("expected status expired, got %s", updated.Status)
	}
	if updated.Code != "SAVE20" || updated.DiscountAmount != 20 {
		t.Error("untouched fields were modified")
	}
}

func TestCouponGetByCode(t *testing.T) {
	t.Parallel()

	repo := NewMockCouponRepository()
	svc := service.NewCouponService(repo)

	repo.AddCoupon(&domain.Coupon{ID: primitive.NewObjectID(), Code: "SAVE20"})

	coupon, err := svc.GetByCode(context.Background(), "SAVE20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coupon.Code != "SAVE20" {
		t.Errorf("wrong coupon returned: %s", coupon.Code)
	}

	if _, err := svc.GetByCode(context.Background(), "NOPE"); !errors.Is(err, service.ErrCouponNotFound) {
		t.Fatalf("expected ErrCouponNotFound, got %v", err)
	}
}
