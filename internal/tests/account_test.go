package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dispatch/internal/auth"
	"dispatch/internal/domain"
	"dispatch/internal/service"
)

func newTokenManager() *auth.Manager {
	return auth.NewManager("test-secret", time.Hour)
}

func testAddress() domain.Address {
	return domain.Address{HouseNumber: "12", Area: "Downtown"}
}

// ──────────────────────────────────────────────
// USER ACCOUNTS
// ──────────────────────────────────────────────

func TestUserRegister_Success(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	svc := service.NewUserService(userRepo, NewMockOrderRepository(), newTokenManager())

	result, err := svc.Register(context.Background(), service.RegisterUserRequest{
		FullName:  "Asha Verma",
		Email:     "asha@example.com",
		Phone:     "5550100",
		Password:  "secret123",
		Addresses: []domain.Address{testAddress()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Token == "" {
		t.Error("expected a signed token")
	}
	if result.User.Password != "" {
		t.Error("password hash leaked into the response")
	}

	stored := userRepo.GetUser(result.User.ID)
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.Password, "secret123") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestUserRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	svc := service.NewUserService(userRepo, NewMockOrderRepository(), newTokenManager())

	req := service.RegisterUserRequest{
		FullName:  "Asha Verma",
		Email:     "asha@example.com",
		Phone:     "5550100",
		Password:  "secret123",
		Addresses: []domain.Address{testAddress()},
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	req.Phone = "5550199"
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRegister_MissingFields(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(NewMockUserRepository(), NewMockOrderRepository(), newTokenManager())

	cases := []service.RegisterUserRequest{
		{Email: "a@example.com", Phone: "1", Password: "p", Addresses: []domain.Address{testAddress()}},
		{FullName: "A", Phone: "1", Password: "p", Addresses: []domain.Address{testAddress()}},
		{FullName: "A", Email: "a@example.com", Password: "p", Addresses: []domain.Address{testAddress()}},
		{FullName: "A", Email: "a@example.com", Phone: "1", Addresses: []domain.Address{testAddress()}},
		{FullName: "A", Email: "a@example.com", Phone: "1", Password: "p"},
	}

	for i, req := range cases {
		if _, err := svc.Register(context.Background(), req); !errors.Is(err, service.ErrMissingUserFields) {
			t.Errorf("case %d: expected ErrMissingUserFields, got %v", i, err)
		}
	}
}

func TestUserLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	svc := service.NewUserService(userRepo, NewMockOrderRepository(), newTokenManager())

	if _, err := svc.Register(context.Background(), service.RegisterUserRequest{
		FullName:  "Asha Verma",
		Email:     "asha@example.com",
		Phone:     "5550100",
		Password:  "secret123",
		Addresses: []domain.Address{testAddress()},
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "asha@example.com", "wrong"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "secret123"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUserUpdateProfile_EmailRejected(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	svc := service.NewUserService(userRepo, NewMockOrderRepository(), newTokenManager())

	user := &domain.User{ID: primitive.NewObjectID(), Email: "asha@example.com"}
	userRepo.AddUser(user)

	email := "new@example.com"
	_, err := svc.UpdateProfile(adminContext(), user.ID.Hex(), service.UpdateProfileRequest{Email: &email})
	if !errors.Is(err, service.ErrEmailImmutable) {
		t.Fatalf("expected ErrEmailImmutable, got %v", err)
	}
	if userRepo.GetUser(user.ID).Email != "asha@example.com" {
		t.Error("email changed through the profile path")
	}
}

func TestUserUpdateProfile_PartialFieldsOnly(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	svc := service.NewUserService(userRepo, NewMockOrderRepository(), newTokenManager())

	user := &domain.User{
		ID:       primitive.NewObjectID(),
		FullName: "Asha Verma",
		Phone:    "5550100",
		Gender:   "female",
	}
	userRepo.AddUser(user)

	phone := "5550111"
	updated, err := svc.UpdateProfile(adminContext(), user.ID.Hex(), service.UpdateProfileRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Phone != "5550111" {
		t.Errorf("expected phone updated, got %s", updated.Phone)
	}
	if updated.FullName != "Asha Verma" || updated.Gender != "female" {
		t.Error("untouched fields were modified")
	}
}

func TestUserUpdatePassword_WrongCurrent(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	svc := service.NewUserService(userRepo, NewMockOrderRepository(), newTokenManager())

	hash, err := auth.HashPassword("original")
	if err != nil {
		t.Fatal(err)
	}
	user := &domain.User{ID: primitive.NewObjectID(), Password: hash}
	userRepo.AddUser(user)

	err = svc.UpdatePassword(adminContext(), user.ID.Hex(), "guess", "newpass")
	if !errors.Is(err, service.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	if err := svc.UpdatePassword(adminContext(), user.ID.Hex(), "original", "newpass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !auth.CheckPassword(userRepo.GetUser(user.ID).Password, "newpass") {
		t.Error("new password hash does not verify")
	}
}

func TestUserMutations_RequireAuthentication(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(NewMockUserRepository(), NewMockOrderRepository(), newTokenManager())
	id := primitive.NewObjectID().Hex()

	if _, err := svc.UpdateProfile(context.Background(), id, service.UpdateProfileRequest{}); !errors.Is(err, service.ErrUnauthenticated) {
		t.Errorf("UpdateProfile: expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.UpdatePassword(context.Background(), id, "a", "b"); !errors.Is(err, service.ErrUnauthenticated) {
		t.Errorf("UpdatePassword: expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.Delete(context.Background(), id); !errors.Is(err, service.ErrUnauthenticated) {
		t.Errorf("Delete: expected ErrUnauthenticated, got %v", err)
	}
}

// ──────────────────────────────────────────────
// RIDER ACCOUNTS
// ──────────────────────────────────────────────

func TestRiderRegister_SetsAvailableAndJoinDate(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	svc := service.NewRiderService(riderRepo, NewMockOrderRepository(), newTokenManager())

	result, err := svc.Register(context.Background(), service.RegisterRiderRequest{
		Name:           "Ravi Kumar",
		Phone:          "5550200",
		VehicleDetails: "Honda Activa KA-01",
		Email:          "ravi@example.com",
		Password:       "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := riderRepo.GetRider(result.Rider.ID)
	if stored.CurrentStatus != domain.RiderStatusAvailable {
		t.Errorf("expected new rider %s, got %s", domain.RiderStatusAvailable, stored.CurrentStatus)
	}
	if stored.JoinDate.IsZero() {
		t.Error("join date not set")
	}
	if result.Rider.Password != "" {
		t.Error("password hash leaked in the response")
	}
	if !auth.CheckPassword(stored.Password, "secret123") {
		t.Error("stored hash does not verify against the original password")
	}
	if result.Token == "" {
		t.Error("expected a signed token")
	}
}

func TestRiderRegister_ContactCollision(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	svc := service.NewRiderService(riderRepo, NewMockOrderRepository(), newTokenManager())

	base := service.RegisterRiderRequest{
		Name:           "Ravi Kumar",
		Phone:          "5550200",
		VehicleDetails: "Honda Activa KA-01",
		Email:          "ravi@example.com",
		Password:       "secret123",
	}
	if _, err := svc.Register(context.Background(), base); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// Same email, different phone.
	dup := base
	dup.Phone = "5550299"
	if _, err := svc.Register(context.Background(), dup); !errors.Is(err, service.ErrRiderContactTaken) {
		t.Errorf("email collision: expected ErrRiderContactTaken, got %v", err)
	}

	// Same phone, different email.
	dup = base
	dup.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), dup); !errors.Is(err, service.ErrRiderContactTaken) {
		t.Errorf("phone collision: expected ErrRiderContactTaken, got %v", err)
	}
}

func TestRiderUpdateStatus_ClosedSet(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	svc := service.NewRiderService(riderRepo, NewMockOrderRepository(), newTokenManager())

	rider := &domain.Rider{
		ID:            primitive.NewObjectID(),
		CurrentStatus: domain.RiderStatusAvailable,
	}
	riderRepo.AddRider(rider)

	// Free-form strings are rejected.
	if _, err := svc.UpdateStatus(adminContext(), rider.ID.Hex(), "available"); !errors.Is(err, service.ErrInvalidRiderStatus) {
		t.Errorf("expected ErrInvalidRiderStatus for lowercase value, got %v", err)
	}
	if _, err := svc.UpdateStatus(adminContext(), rider.ID.Hex(), "OnBreak"); !errors.Is(err, service.ErrInvalidRiderStatus) {
		t.Errorf("expected ErrInvalidRiderStatus for unknown value, got %v", err)
	}

	// Busy belongs to dispatch.
	if _, err := svc.UpdateStatus(adminContext(), rider.ID.Hex(), domain.RiderStatusBusy); !errors.Is(err, service.ErrRiderStatusReserved) {
		t.Errorf("expected ErrRiderStatusReserved for Busy, got %v", err)
	}

	updated, err := svc.UpdateStatus(adminContext(), rider.ID.Hex(), domain.RiderStatusInactive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CurrentStatus != domain.RiderStatusInactive {
		t.Errorf("expected %s, got %s", domain.RiderStatusInactive, updated.CurrentStatus)
	}
}

func TestRiderUpdate_DuplicateContactExcludesSelf(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	svc := service.NewRiderService(riderRepo, NewMockOrderRepository(), newTokenManager())

	rider := &domain.Rider{
		ID:    primitive.NewObjectID(),
		Email: "ravi@example.com",
		Phone: "5550200",
	}
	other := &domain.Rider{
		ID:    primitive.NewObjectID(),
		Email: "lena@example.com",
		Phone: "5550300",
	}
	riderRepo.AddRider(rider)
	riderRepo.AddRider(other)

	// Re-submitting the rider's own contact details is fine.
	ownEmail := "ravi@example.com"
	if _, err := svc.Update(adminContext(), rider.ID.Hex(), service.UpdateRiderRequest{Email: &ownEmail}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Taking another rider's phone is not.
	takenPhone := "5550300"
	if _, err := svc.Update(adminContext(), rider.ID.Hex(), service.UpdateRiderRequest{Phone: &takenPhone}); !errors.Is(err, service.ErrRiderContactTaken) {
		t.Fatalf("expected ErrRiderContactTaken, got %v", err)
	}
}
