package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/domain"
	"dispatch/internal/redis"
	"dispatch/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*domain.User

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[primitive.ObjectID]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			copy := *u
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, patch domain.UserPatch) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		user.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	if patch.Image != nil {
		user.Image = *patch.Image
	}
	if patch.Addresses != nil {
		user.Addresses = *patch.Addresses
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Password = hash
	return nil
}

func (m *MockUserRepository) AddAddress(ctx context.Context, id primitive.ObjectID, addr domain.Address) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.Addresses = append(user.Addresses, addr)
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// GetUser returns the stored user for test assertions.
func (m *MockUserRepository) GetUser(id primitive.ObjectID) *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[id]
}

// ──────────────────────────────────────────────
// MOCK RIDER REPOSITORY
// ──────────────────────────────────────────────

// MockRiderRepository is a mock implementation of RiderRepository.
type MockRiderRepository struct {
	mu     sync.RWMutex
	riders map[primitive.ObjectID]*domain.Rider

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32
	AppendOrderCallCount  int32
	UpdateRatingCallCount int32

	// Error injection
	CreateError       error
	UpdateStatusError error
	AppendOrderError  error
}

// NewMockRiderRepository creates a new mock rider repository.
func NewMockRiderRepository() *MockRiderRepository {
	return &MockRiderRepository{
		riders: make(map[primitive.ObjectID]*domain.Rider),
	}
}

// AddRider adds a rider to the mock repository.
func (m *MockRiderRepository) AddRider(rider *domain.Rider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.riders[rider.ID] = rider
}

func (m *MockRiderRepository) Create(ctx context.Context, rider *domain.Rider) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if rider.ID.IsZero() {
		rider.ID = primitive.NewObjectID()
	}
	for _, r := range m.riders {
		if r.Email == rider.Email || r.Phone == rider.Phone {
			return repository.ErrDuplicate
		}
	}
	stored := *rider
	m.riders[rider.ID] = &stored
	return nil
}

func (m *MockRiderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Rider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rider, ok := m.riders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *rider
	return &copy, nil
}

func (m *MockRiderRepository) GetByEmail(ctx context.Context, email string) (*domain.Rider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.riders {
		if r.Email == email {
			copy := *r
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockRiderRepository) GetByContact(ctx context.Context, email, phone string) (*domain.Rider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.riders {
		if r.Email == email || r.Phone == phone {
			copy := *r
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockRiderRepository) ContactTaken(ctx context.Context, exclude primitive.ObjectID, email, phone string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.riders {
		if r.ID == exclude {
			continue
		}
		if (email != "" && r.Email == email) || (phone != "" && r.Phone == phone) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRiderRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Rider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Rider, 0, len(ids))
	for _, id := range ids {
		if r, ok := m.riders[id]; ok {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockRiderRepository) GetAll(ctx context.Context) ([]*domain.Rider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Rider, 0, len(m.riders))
	for _, r := range m.riders {
		copy := *r
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockRiderRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, patch domain.RiderPatch) (*domain.Rider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rider, ok := m.riders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		rider.Name = *patch.Name
	}
	if patch.Phone != nil {
		rider.Phone = *patch.Phone
	}
	if patch.Email != nil {
		rider.Email = *patch.Email
	}
	if patch.VehicleDetails != nil {
		rider.VehicleDetails = *patch.VehicleDetails
	}
	if patch.Image != nil {
		rider.Image = *patch.Image
	}
	if patch.DateOfBirth != nil {
		rider.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		rider.Gender = *patch.Gender
	}
	if patch.Addresses != nil {
		rider.Addresses = *patch.Addresses
	}
	if patch.Password != nil {
		rider.Password = *patch.Password
	}
	if patch.CurrentStatus != nil {
		rider.CurrentStatus = *patch.CurrentStatus
	}
	copy := *rider
	return &copy, nil
}

func (m *MockRiderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.RiderStatus) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rider, ok := m.riders[id]
	if !ok {
		return repository.ErrNotFound
	}
	rider.CurrentStatus = status
	return nil
}

func (m *MockRiderRepository) AppendOrder(ctx context.Context, id, orderID primitive.ObjectID) error {
	atomic.AddInt32(&m.AppendOrderCallCount, 1)
	if m.AppendOrderError != nil {
		return m.AppendOrderError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rider, ok := m.riders[id]
	if !ok {
		return repository.ErrNotFound
	}
	for _, existing := range rider.Orders {
		if existing == orderID {
			return nil
		}
	}
	rider.Orders = append(rider.Orders, orderID)
	return nil
}

func (m *MockRiderRepository) UpdateRating(ctx context.Context, id primitive.ObjectID, average float64, count int) error {
	atomic.AddInt32(&m.UpdateRatingCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	rider, ok := m.riders[id]
	if !ok {
		return repository.ErrNotFound
	}
	rider.AverageRating = average
	rider.ReviewCount = count
	return nil
}

func (m *MockRiderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.riders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.riders, id)
	return nil
}

// GetRider returns the stored rider for test assertions.
func (m *MockRiderRepository) GetRider(id primitive.ObjectID) *domain.Rider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.riders[id]
}

// ──────────────────────────────────────────────
// MOCK ORDER REPOSITORY
// ──────────────────────────────────────────────

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[primitive.ObjectID]*domain.Order

	// Counters for verification
	CreateCallCount    int32
	AssignCallCount    int32
	SetReviewCallCount int32

	// Error injection
	CreateError error
	AssignError error
}

// NewMockOrderRepository creates a new mock order repository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[primitive.ObjectID]*domain.Order),
	}
}

// AddOrder adds an order to the mock repository.
func (m *MockOrderRepository) AddOrder(order *domain.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *order
	return &copy, nil
}

func (m *MockOrderRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := m.orders[id]; ok {
			copy := *o
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockOrderRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			copy := *o
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		copy := *o
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockOrderRepository) Assign(ctx context.Context, id, riderID primitive.ObjectID) (*domain.Order, error) {
	atomic.AddInt32(&m.AssignCallCount, 1)
	if m.AssignError != nil {
		return nil, m.AssignError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	rid := riderID
	order.RiderID = &rid
	order.Status = domain.OrderStatusAssigned
	copy := *order
	return &copy, nil
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus, trackingURL string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	order.Status = status
	if trackingURL != "" {
		order.TrackingURL = trackingURL
	}
	copy := *order
	return &copy, nil
}

func (m *MockOrderRepository) SetReview(ctx context.Context, id primitive.ObjectID, review domain.Review) error {
	atomic.AddInt32(&m.SetReviewCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok || order.Review != nil {
		return repository.ErrNotFound
	}
	order.Review = &review
	return nil
}

func (m *MockOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

// GetOrder returns the stored order for test assertions.
func (m *MockOrderRepository) GetOrder(id primitive.ObjectID) *domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.orders[id]
}

// ──────────────────────────────────────────────
// MOCK WAREHOUSE REPOSITORY
// ──────────────────────────────────────────────

// MockWarehouseRepository is a mock implementation of WarehouseRepository.
type MockWarehouseRepository struct {
	mu         sync.RWMutex
	warehouses map[primitive.ObjectID]*domain.Warehouse
}

// NewMockWarehouseRepository creates a new mock warehouse repository.
func NewMockWarehouseRepository() *MockWarehouseRepository {
	return &MockWarehouseRepository{
		warehouses: make(map[primitive.ObjectID]*domain.Warehouse),
	}
}

// AddWarehouse adds a warehouse to the mock repository.
func (m *MockWarehouseRepository) AddWarehouse(warehouse *domain.Warehouse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warehouses[warehouse.ID] = warehouse
}

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *domain.Warehouse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if warehouse.ID.IsZero() {
		warehouse.ID = primitive.NewObjectID()
	}
	stored := *warehouse
	m.warehouses[warehouse.ID] = &stored
	return nil
}

func (m *MockWarehouseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Warehouse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	warehouse, ok := m.warehouses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *warehouse
	return &copy, nil
}

func (m *MockWarehouseRepository) GetAll(ctx context.Context) ([]*domain.Warehouse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Warehouse, 0, len(m.warehouses))
	for _, w := range m.warehouses {
		copy := *w
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockWarehouseRepository) Update(ctx context.Context, id primitive.ObjectID, warehouse *domain.Warehouse) (*domain.Warehouse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.warehouses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Name = warehouse.Name
	stored.Address = warehouse.Address
	stored.Latitude = warehouse.Latitude
	stored.Longitude = warehouse.Longitude
	stored.UpdatedAt = time.Now()
	copy := *stored
	return &copy, nil
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.warehouses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.warehouses, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK COUPON REPOSITORY
// ──────────────────────────────────────────────

// MockCouponRepository is a mock implementation of CouponRepository.
type MockCouponRepository struct {
	mu      sync.RWMutex
	coupons map[primitive.ObjectID]*domain.Coupon
}

// NewMockCouponRepository creates a new mock coupon repository.
func NewMockCouponRepository() *MockCouponRepository {
	return &MockCouponRepository{
		coupons: make(map[primitive.ObjectID]*domain.Coupon),
	}
}

// AddCoupon adds a coupon to the mock repository.
func (m *MockCouponRepository) AddCoupon(coupon *domain.Coupon) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coupons[coupon.ID] = coupon
}

func (m *MockCouponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if coupon.ID.IsZero() {
		coupon.ID = primitive.NewObjectID()
	}
	stored := *coupon
	m.coupons[coupon.ID] = &stored
	return nil
}

func (m *MockCouponRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Coupon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	coupon, ok := m.coupons[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *coupon
	return &copy, nil
}

func (m *MockCouponRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Coupon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Coupon, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.coupons[id]; ok {
			copy := *c
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.coupons {
		if c.Code == code {
			copy := *c
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockCouponRepository) GetAll(ctx context.Context) ([]*domain.Coupon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Coupon, 0, len(m.coupons))
	for _, c := range m.coupons {
		copy := *c
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockCouponRepository) Update(ctx context.Context, id primitive.ObjectID, coupon *domain.Coupon) (*domain.Coupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.coupons[id]; !ok {
		return nil, repository.ErrNotFound
	}
	stored := *coupon
	stored.ID = id
	m.coupons[id] = &stored
	copy := stored
	return &copy, nil
}

func (m *MockCouponRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.coupons[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.coupons, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory implementation of the rider lock store.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]bool),
	}
}

func (m *MockLockStore) AcquireRiderLock(ctx context.Context, riderID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[riderID] {
		return false, nil
	}
	m.locks[riderID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseRiderLock(ctx context.Context, riderID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, riderID)
	return nil
}

// HoldLock pre-acquires a lock so a test can simulate contention.
func (m *MockLockStore) HoldLock(riderID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locks[riderID] = true
}

// ──────────────────────────────────────────────
// PASSTHROUGH TX RUNNER
// ──────────────────────────────────────────────

// PassthroughTxRunner runs the function directly without a real transaction.
type PassthroughTxRunner struct {
	// Counters for verification
	CallCount int32

	// Error injection
	RunError error
}

// NewPassthroughTxRunner creates a new passthrough transaction runner.
func NewPassthroughTxRunner() *PassthroughTxRunner {
	return &PassthroughTxRunner{}
}

func (r *PassthroughTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	atomic.AddInt32(&r.CallCount, 1)
	if r.RunError != nil {
		return r.RunError
	}
	return fn(ctx)
}

// Ensure mocks implement the interfaces they stand in for.
var (
	_ repository.UserRepository      = (*MockUserRepository)(nil)
	_ repository.RiderRepository     = (*MockRiderRepository)(nil)
	_ repository.OrderRepository     = (*MockOrderRepository)(nil)
	_ repository.WarehouseRepository = (*MockWarehouseRepository)(nil)
	_ repository.CouponRepository    = (*MockCouponRepository)(nil)
	_ redis.LockStoreInterface       = (*MockLockStore)(nil)
	_ repository.TxRunner            = (*PassthroughTxRunner)(nil)
)
