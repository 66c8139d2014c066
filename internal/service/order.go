package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
	"dispatch/internal/repository"
)

// OrderService handles order operations.
type OrderService struct {
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	riderRepo  repository.RiderRepository
	couponRepo repository.CouponRepository
	tx         repository.TxRunner
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	riderRepo repository.RiderRepository,
	couponRepo repository.CouponRepository,
	tx repository.TxRunner,
) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		riderRepo:  riderRepo,
		couponRepo: couponRepo,
		tx:         tx,
	}
}

// CreateOrderRequest contains the parameters for order creation.
type CreateOrderRequest struct {
	UserID          string
	RiderID         string
	Items           []domain.OrderItem
	TotalPrice      float64
	OrderTotal      float64
	CouponID        string
	ShippingAddress *domain.Address
	PaymentMethod   string
	TrackingURL     string
}

// Create persists a new order in Pending state and returns it.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}
	if req.UserID == "" || req.RiderID == "" || len(req.Items) == 0 || req.TotalPrice == 0 ||
		req.CouponID == "" || req.ShippingAddress == nil || req.PaymentMethod == "" || req.OrderTotal == 0 {
		return nil, ErrMissingOrderFields
	}

	userID, err := parseID(req.UserID)
	if err != nil {
		return nil, err
	}
	riderID, err := parseID(req.RiderID)
	if err != nil {
		return nil, err
	}
	couponID, err := parseID(req.CouponID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:          userID,
		RiderID:         &riderID,
		Status:          domain.OrderStatusPending,
		Items:           req.Items,
		TotalPrice:      req.TotalPrice,
		OrderTotal:      req.OrderTotal,
		CouponID:        couponID,
		ShippingAddress: *req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TrackingURL:     req.TrackingURL,
		CreatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UserSummary is the slice of user fields expanded into order responses.
type UserSummary struct {
	ID       primitive.ObjectID `json:"id"`
	FullName string             `json:"fullName"`
	Email    string             `json:"email"`
	Phone    string             `json:"phone"`
	Image    string             `json:"image,omitempty"`
}

// RiderSummary is the slice of rider fields expanded into order responses.
type RiderSummary struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Phone string             `json:"phone_number"`
}

// OrderDetail is an order with its coupon, user and rider references expanded.
type OrderDetail struct {
	*domain.Order
	User   *UserSummary   `json:"user,omitempty"`
	Rider  *RiderSummary  `json:"rider,omitempty"`
	Coupon *domain.Coupon `json:"coupon,omitempty"`
}

// Get retrieves an order with expanded references.
func (s *OrderService) Get(ctx context.Context, id string) (*OrderDetail, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	details, err := s.expand(ctx, []*domain.Order{order})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

// List retrieves all orders with expanded references, newest first.
func (s *OrderService) List(ctx context.Context) ([]*OrderDetail, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, orders)
}

// ListByUser retrieves a user's orders with expanded references.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*OrderDetail, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetByUserID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, orders)
}

// expand batch-fetches the users, riders and coupons referenced by orders
// and joins them into OrderDetail values.
func (s *OrderService) expand(ctx context.Context, orders []*domain.Order) ([]*OrderDetail, error) {
	userIDs := make([]primitive.ObjectID, 0, len(orders))
	riderIDs := make([]primitive.ObjectID, 0, len(orders))
	couponIDs := make([]primitive.ObjectID, 0, len(orders))
	for _, o := range orders {
		userIDs = append(userIDs, o.UserID)
		if o.RiderID != nil {
			riderIDs = append(riderIDs, *o.RiderID)
		}
		if !o.CouponID.IsZero() {
			couponIDs = append(couponIDs, o.CouponID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	riders, err := s.riderRepo.GetByIDs(ctx, riderIDs)
	if err != nil {
		return nil, err
	}
	coupons, err := s.couponRepo.GetByIDs(ctx, couponIDs)
	if err != nil {
		return nil, err
	}

	userByID := make(map[primitive.ObjectID]*domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	riderByID := make(map[primitive.ObjectID]*domain.Rider, len(riders))
	for _, r := range riders {
		riderByID[r.ID] = r
	}
	couponByID := make(map[primitive.ObjectID]*domain.Coupon, len(coupons))
	for _, c := range coupons {
		couponByID[c.ID] = c
	}

	details := make([]*OrderDetail, 0, len(orders))
	for _, o := range orders {
		detail := &OrderDetail{Order: o}
		if u, ok := userByID[o.UserID]; ok {
			detail.User = &UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email, Phone: u.Phone, Image: u.Image}
		}
		if o.RiderID != nil {
			if r, ok := riderByID[*o.RiderID]; ok {
				detail.Rider = &RiderSummary{ID: r.ID, Name: r.Name, Phone: r.Phone}
			}
		}
		if c, ok := couponByID[o.CouponID]; ok {
			detail.Coupon = c
		}
		details = append(details, detail)
	}
	return details, nil
}

// UpdateStatus overwrites the order status and tracking URL. The status must
// be a member of the closed set; this route does not touch the rider, only
// dispatch keeps the two in sync.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, trackingURL string) (*domain.Order, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}
	if status == "" {
		return nil, ErrMissingStatus
	}
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.UpdateStatus(ctx, oid, status, trackingURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := requirePrincipal(ctx); err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// AttachReview sets the embedded review once the order is Delivered, and
// folds the rating into the assigned rider's aggregate. A second attach is
// rejected; the first review is never overwritten.
func (s *OrderService) AttachReview(ctx context.Context, id string, rating int, comment string) (*domain.Review, error) {
	if _, err := requirePrincipal(ctx); err != nil {
		return nil, err
	}

	// Rating bounds are checked before anything else: an out-of-range
	// rating is rejected regardless of order state.
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.Status != domain.OrderStatusDelivered {
		return nil, ErrOrderNotDelivered
	}
	if order.Review != nil {
		return nil, ErrOrderAlreadyReviewed
	}

	review := domain.Review{
		Rating:     rating,
		Comment:    comment,
		ReviewedAt: time.Now(),
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.SetReview(ctx, oid, review); err != nil {
			// The guarded update matched nothing: a concurrent attach won.
			if errors.Is(err, repository.ErrNotFound) {
				return ErrOrderAlreadyReviewed
			}
			return err
		}

		if order.RiderID == nil {
			return nil
		}
		rider, err := s.riderRepo.GetByID(ctx, *order.RiderID)
		if err != nil {
			// A deleted rider does not block the review itself.
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}

		count := rider.ReviewCount + 1
		average := (rider.AverageRating*float64(rider.ReviewCount) + float64(rating)) / float64(count)
		return s.riderRepo.UpdateRating(ctx, rider.ID, average, count)
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}
