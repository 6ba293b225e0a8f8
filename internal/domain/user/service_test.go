package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/innkeep/innkeep-api/internal/pkg/password"
)

type fakeUserRepo struct {
	byID        *User
	updated     *User
	newPassHash string
}

func (f *fakeUserRepo) Create(ctx context.Context, u *User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	if f.byID != nil && f.byID.ID == id {
		return f.byID, nil
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return nil, nil
}
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, u *User) error {
	f.updated = u
	return nil
}
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	f.newPassHash = passwordHash
	return nil
}

func seedUser(t *testing.T, plain string) *User {
	t.Helper()

	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return &User{
		ID:           uuid.New(),
		Name:         "Alice Smith",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         RoleCustomer,
		PhoneNumber:  sql.NullString{String: "555-0101", Valid: true},
	}
}

func TestGetInfoUnknownUser(t *testing.T) {
	svc := NewService(&fakeUserRepo{})

	_, err := svc.GetInfo(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	u := seedUser(t, "Passw0rd!")
	repo := &fakeUserRepo{byID: u}
	svc := NewService(repo)

	addr := "12 Harbor Lane"
	resp, err := svc.UpdateProfile(context.Background(), u.ID, &UpdateProfileRequest{Address: &addr})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Address != addr {
		t.Errorf("expected address to change, got %q", resp.Address)
	}
	if resp.Name != "Alice Smith" || resp.PhoneNumber != "555-0101" {
		t.Errorf("untouched fields must survive the patch: %+v", resp)
	}
	if repo.updated == nil {
		t.Fatal("expected update to be persisted")
	}
}

func TestUpdateProfileRejectsBadName(t *testing.T) {
	u := seedUser(t, "Passw0rd!")
	svc := NewService(&fakeUserRepo{byID: u})

	bad := "Alice2"
	_, err := svc.UpdateProfile(context.Background(), u.ID, &UpdateProfileRequest{Name: &bad})
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	u := seedUser(t, "Passw0rd!")
	repo := &fakeUserRepo{byID: u}
	svc := NewService(repo)

	err := svc.ChangePassword(context.Background(), u.ID, &ChangePasswordRequest{
		CurrentPassword: "Wrong0ne!",
		NewPassword:     "NewPassw0rd!",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if repo.newPassHash != "" {
		t.Fatal("password must not change on failed verification")
	}
}

func TestChangePasswordRejectsWeakNewPassword(t *testing.T) {
	u := seedUser(t, "Passw0rd!")
	svc := NewService(&fakeUserRepo{byID: u})

	err := svc.ChangePassword(context.Background(), u.ID, &ChangePasswordRequest{
		CurrentPassword: "Passw0rd!",
		NewPassword:     "password",
	})
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestChangePasswordSuccess(t *testing.T) {
	u := seedUser(t, "Passw0rd!")
	repo := &fakeUserRepo{byID: u}
	svc := NewService(repo)

	err := svc.ChangePassword(context.Background(), u.ID, &ChangePasswordRequest{
		CurrentPassword: "Passw0rd!",
		NewPassword:     "NewPassw0rd!",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.newPassHash == "" {
		t.Fatal("expected a new password hash to be stored")
	}
	if !password.Verify("NewPassw0rd!", repo.newPassHash) {
		t.Fatal("stored hash must match the new password")
	}
}
