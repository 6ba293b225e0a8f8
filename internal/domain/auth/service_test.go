package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/innkeep/innkeep-api/internal/domain/user"
	"github.com/innkeep/innkeep-api/internal/pkg/jwt"
	"github.com/innkeep/innkeep-api/internal/pkg/password"
)

type fakeUserRepo struct {
	created *user.User
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*user.User{},
		byID:    map[uuid.UUID]*user.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.created = u
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	repo := newFakeUserRepo()
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
	return NewService(repo, jwtService, redisClient), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, plain string) *user.User {
	t.Helper()

	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := &user.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleCustomer,
	}
	repo.byEmail[u.Email] = u
	repo.byID[u.ID] = u
	return u
}

func TestSignupSuccess(t *testing.T) {
	svc, repo := newTestService(t)

	resp, err := svc.Signup(context.Background(), &SignupRequest{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected user to be created")
	}
	if repo.created.Role != user.RoleCustomer {
		t.Fatalf("new accounts must be customers, got %s", repo.created.Role)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if repo.created.PasswordHash == "Passw0rd!" {
		t.Fatal("password must not be stored in plain text")
	}
}

func TestSignupNormalizesEmail(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Name:     "Alice",
		Email:    "  ALICE@Example.COM ",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.created.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", repo.created.Email)
	}
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name string
		req  SignupRequest
		want error
	}{
		{"bad name", SignupRequest{Name: "Alice2", Email: "a@b.com", Password: "Passw0rd!"}, ErrInvalidName},
		{"bad email", SignupRequest{Name: "Alice", Email: "not-an-email", Password: "Passw0rd!"}, ErrInvalidEmail},
		{"weak password", SignupRequest{Name: "Alice", Email: "a@b.com", Password: "password"}, ErrInvalidPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), &tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "alice@example.com", "Passw0rd!")

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, repo := newTestService(t)
	u := seedUser(t, repo, "alice@example.com", "Passw0rd!")

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.User.ID != u.ID {
		t.Fatal("expected the seeded user in the response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "alice@example.com", "Passw0rd!")

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "Wrong0ne!",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "Passw0rd!",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "alice@example.com", "Passw0rd!")

	first, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	second, err := svc.Refresh(context.Background(), first.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if second.Tokens.RefreshToken == "" {
		t.Fatal("expected a new refresh token")
	}

	// The old token is single-use
	_, err = svc.Refresh(context.Background(), first.Tokens.RefreshToken)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for reused token, got %v", err)
	}

	// The rotated token still works
	if _, err := svc.Refresh(context.Background(), second.Tokens.RefreshToken); err != nil {
		t.Fatalf("rotated token should be valid: %v", err)
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	for _, token := range []string{"", "not-a-jwt"} {
		if _, err := svc.Refresh(context.Background(), token); !errors.Is(err, ErrInvalidRefreshToken) {
			t.Fatalf("expected ErrInvalidRefreshToken for %q, got %v", token, err)
		}
	}
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	svc, repo := newTestService(t)
	seedUser(t, repo, "alice@example.com", "Passw0rd!")

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), resp.Tokens.RefreshToken); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	_, err = svc.Refresh(context.Background(), resp.Tokens.RefreshToken)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken after logout, got %v", err)
	}
}
