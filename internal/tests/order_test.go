package tests

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
	"dispatch/internal/service"
)

func newOrderFixture() (*service.OrderService, *MockOrderRepository, *MockUserRepository, *MockRiderRepository, *MockCouponRepository) {
	orderRepo := NewMockOrderRepository()
	userRepo := NewMockUserRepository()
	riderRepo := NewMockRiderRepository()
	couponRepo := NewMockCouponRepository()
	svc := service.NewOrderService(orderRepo, userRepo, riderRepo, couponRepo, NewPassthroughTxRunner())
	return svc, orderRepo, userRepo, riderRepo, couponRepo
}

func validCreateRequest() service.CreateOrderRequest {
	return service.CreateOrderRequest{
		UserID:          primitive.NewObjectID().Hex(),
		RiderID:         primitive.NewObjectID().Hex(),
		Items:           []domain.OrderItem{{Name: "Rice 5kg", Quantity: 1, Price: 450}},
		TotalPrice:      450,
		OrderTotal:      430,
		CouponID:        primitive.NewObjectID().Hex(),
		ShippingAddress: &domain.Address{Area: "Downtown"},
		PaymentMethod:   "cod",
	}
}

// ──────────────────────────────────────────────
// ORDER CREATION
// ──────────────────────────────────────────────

func TestOrderCreate_ReturnsPendingOrder(t *testing.T) {
	t.Parallel()

	svc, orderRepo, _, _, _ := newOrderFixture()

	order, err := svc.Create(adminContext(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.ID.IsZero() {
		t.Error("created order has no id")
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected status %s, got %s", domain.OrderStatusPending, order.Status)
	}
	if orderRepo.GetOrder(order.ID) == nil {
		t.Error("order not persisted")
	}
}

func TestOrderCreate_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newOrderFixture()

	mutations := []func(*service.CreateOrderRequest){
		func(r *service.CreateOrderRequest) { r.UserID = "" },
		func(r *service.CreateOrderRequest) { r.RiderID = "" },
		func(r *service.CreateOrderRequest) { r.Items = nil },
		func(r *service.CreateOrderRequest) { r.TotalPrice = 0 },
		func(r *service.CreateOrderRequest) { r.OrderTotal = 0 },
		func(r *service.CreateOrderRequest) { r.CouponID = "" },
		func(r *service.CreateOrderRequest) { r.ShippingAddress = nil },
		func(r *service.CreateOrderRequest) { r.PaymentMethod = "" },
	}

	for i, mutate := range mutations {
		req := validCreateRequest()
		mutate(&req)
		if _, err := svc.Create(adminContext(), req); !errors.Is(err, service.ErrMissingOrderFields) {
			t.Errorf("case %d: expected ErrMissingOrderFields, got %v", i, err)
		}
	}
}

func TestOrderUpdateStatus_RejectsFreeFormStrings(t *testing.T) {
	t.Parallel()

	svc, orderRepo, _, _, _ := newOrderFixture()

	order := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	orderRepo.AddOrder(order)

	for _, bad := range []domain.OrderStatus{"delivered", "Shipped", "IN_TRANSIT"} {
		if _, err := svc.UpdateStatus(adminContext(), order.ID.Hex(), bad, ""); !errors.Is(err, service.ErrInvalidOrderStatus) {
			t.Errorf("%q: expected ErrInvalidOrderStatus, got %v", bad, err)
		}
	}

	updated, err := svc.UpdateStatus(adminContext(), order.ID.Hex(), domain.OrderStatusInTransit, "https://track.example.com/t/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.OrderStatusInTransit {
		t.Errorf("expected %s, got %s", domain.OrderStatusInTransit, updated.Status)
	}
	if updated.TrackingURL != "https://track.example.com/t/1" {
		t.Errorf("tracking URL not recorded, got %q", updated.TrackingURL)
	}
}

// ──────────────────────────────────────────────
// REVIEWS
// ──────────────────────────────────────────────

func deliveredOrderWithRider(orderRepo *MockOrderRepository, riderRepo *MockRiderRepository) (*domain.Order, *domain.Rider) {
	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		AverageRating: 4.0,
		ReviewCount:   3,
	}
	riderRepo.AddRider(rider)

	rid := rider.ID
	order := &domain.Order{
		ID:      primitive.NewObjectID(),
		UserID:  primitive.NewObjectID(),
		RiderID: &rid,
		Status:  domain.OrderStatusDelivered,
	}
	orderRepo.AddOrder(order)
	return order, rider
}

func TestAttachReview_RatingBoundsCheckedFirst(t *testing.T) {
	t.Parallel()

	svc, orderRepo, _, _, _ := newOrderFixture()

	// Order is still pending: the rating check must still win.
	order := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusPending}
	orderRepo.AddOrder(order)

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.AttachReview(adminContext(), order.ID.Hex(), rating, ""); !errors.Is(err, service.ErrInvalidRating) {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestAttachReview_OnlyWhenDelivered(t *testing.T) {
	t.Parallel()

	svc, orderRepo, _, _, _ := newOrderFixture()

	for _, status := range []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusAssigned,
		domain.OrderStatusInTransit,
		domain.OrderStatusCancelled,
	} {
		order := &domain.Order{ID: primitive.NewObjectID(), Status: status}
		orderRepo.AddOrder(order)

		if _, err := svc.AttachReview(adminContext(), order.ID.Hex(), 5, "great"); !errors.Is(err, service.ErrOrderNotDelivered) {
			t.Errorf("status %s: expected ErrOrderNotDelivered, got %v", status, err)
		}
	}
}

func TestAttachReview_FoldsRatingIntoRiderAggregate(t *testing.T) {
	t.Parallel()

	svc, orderRepo, _, riderRepo, _ := newOrderFixture()
	order, rider := deliveredOrderWithRider(orderRepo, riderRepo)

	review, err := svc.AttachReview(adminContext(), order.ID.Hex(), 5, "quick and careful")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Rating != 5 || review.ReviewedAt.IsZero() {
		t.Error("review not filled in")
	}

	stored := orderRepo.GetOrder(order.ID)
	if stored.Review == nil || stored.Review.Rating != 5 {
		t.Fatal("review not persisted on the order")
	}

	// (4.0*3 + 5) / 4 = 4.25
	storedRider := riderRepo.GetRider(rider.ID)
	if storedRider.ReviewCount != 4 {
		t.Errorf("expected review count 4, got %d", storedRider.ReviewCount)
	}
	if storedRider.AverageRating != 4.25 {
		t.Errorf("expected average 4.25, got %v", storedRider.AverageRating)
	}
}

func TestAttachReview_SecondAttachRejected(t *testing.T) {
	t.Parallel()

	svc, orderRepo, _, riderRepo, _ := newOrderFixture()
	order, _ := deliveredOrderWithRider(orderRepo, riderRepo)

	if _, err := svc.AttachReview(adminContext(), order.ID.Hex(), 4, "fine"); err != nil {
		t.Fatalf("first attach failed: %v", err)
	}

	_, err := svc.AttachReview(adminContext(), order.ID.Hex(), 1, "changed my mind")
	if !errors.Is(err, service.ErrOrderAlreadyReviewed) {
		t.Fatalf("expected ErrOrderAlreadyReviewed, got %v", err)
	}

	stored := orderRepo.GetOrder(order.ID)
	if stored.Review.Rating != 4 {
		t.Errorf("first review overwritten, rating now %d", stored.Review.Rating)
	}
}

// ──────────────────────────────────────────────
// REFERENCE EXPANSION
// ──────────────────────────────────────────────

func TestOrderGet_ExpandsReferences(t *testing.T) {
	t.Parallel()

	svc, orderRepo, userRepo, riderRepo, couponRepo := newOrderFixture()

	user := &domain.User{ID: primitive.NewObjectID(), FullName: "Asha Verma", Email: "asha@example.com"}
	userRepo.AddUser(user)

	rider := &domain.Rider{ID: primitive.NewObjectID(), Name: "Ravi Kumar", Phone: "5550200"}
	riderRepo.AddRider(rider)

	coupon := &domain.Coupon{ID: primitive.NewObjectID(), Code: "SAVE20", DiscountType: domain.DiscountTypeFixed, DiscountAmount: 20}
	couponRepo.AddCoupon(coupon)

	rid := rider.ID
	order := &domain.Order{
		ID:       primitive.NewObjectID(),
		UserID:   user.ID,
		RiderID:  &rid,
		CouponID: coupon.ID,
		Status:   domain.OrderStatusAssigned,
	}
	orderRepo.AddOrder(order)

	detail, err := svc.Get(context.Background(), order.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.User == nil || detail.User.FullName != "Asha Verma" {
		t.Error("user reference not expanded")
	}
	if detail.Rider == nil || detail.Rider.Name != "Ravi Kumar" {
		t.Error("rider reference not expanded")
	}
	if detail.Coupon == nil || detail.Coupon.Code != "SAVE20" {
		t.Error("coupon reference not expanded")
	}
}

func TestOrderGet_UnassignedOrderHasNoRider(t *testing.T) {
	t.Parallel()

	svc, orderRepo, userRepo, _, _ := newOrderFixture()

	user := &domain.User{ID: primitive.NewObjectID(), FullName: "Asha Verma"}
	userRepo.AddUser(user)

	order := &domain.Order{
		ID:     primitive.NewObjectID(),
		UserID: user.ID,
		Status: domain.OrderStatusPending,
	}
	orderRepo.AddOrder(order)

	detail, err := svc.Get(context.Background(), order.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Rider != nil {
		t.Error("expected no rider on an unassigned order")
	}
}
