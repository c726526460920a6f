package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/montluxe/storefront/internal/users"
	pkgAuth "github.com/montluxe/storefront/pkg/auth"
	"github.com/montluxe/storefront/pkg/config"
	"github.com/montluxe/storefront/pkg/db/models"
	pkgerrors "github.com/montluxe/storefront/pkg/errors"
	"github.com/montluxe/storefront/pkg/security"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "montluxe",
		ExpirationMinutes: 30,
	}
}

func TestServiceLoginMintsToken(t *testing.T) {
	password := "watch-secret"
	user := &models.User{
		ID:           uuid.New(),
		Username:     "collector",
		Email:        "collector@example.com",
		PasswordHash: mustHashPassword(t, password),
	}
	cfg := testJWTConfig()

	svc := buildTestService(t, &stubUserRepo{users: map[string]*models.User{user.Username: user}}, cfg)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Username: "Collector",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if resp.UserID != user.ID {
		t.Fatalf("expected user id %s, got %s", user.ID, resp.UserID)
	}
	claims, err := pkgAuth.ParseAccessToken(cfg, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected claim subject %s, got %s", user.ID, claims.UserID)
	}
	if claims.Username != "collector" {
		t.Fatalf("expected username claim collector, got %s", claims.Username)
	}
	if resp.User == nil || resp.User.LastLoginAt == nil {
		t.Fatalf("expected last login to be recorded")
	}
}

func TestServiceLoginRejectsWrongPassword(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Username:     "collector",
		Email:        "collector@example.com",
		PasswordHash: mustHashPassword(t, "right-password"),
	}

	svc := buildTestService(t, &stubUserRepo{users: map[string]*models.User{user.Username: user}}, testJWTConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "collector",
		Password: "wrong-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceLoginUnknownUser(t *testing.T) {
	svc := buildTestService(t, &stubUserRepo{users: map[string]*models.User{}}, testJWTConfig())

	_, err := svc.Login(context.Background(), LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceSignupCreatesUser(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	svc := buildTestService(t, repo, testJWTConfig())

	resp, err := svc.Signup(context.Background(), SignupRequest{
		Username: "NewCollector",
		Email:    "New@Example.com",
		Password: "long-enough-password",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if resp.User == nil || resp.User.Username != "newcollector" {
		t.Fatalf("expected normalized username, got %+v", resp.User)
	}
	if resp.User.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %s", resp.User.Email)
	}

	stored := repo.users["newcollector"]
	if stored == nil {
		t.Fatalf("expected user to be persisted")
	}
	ok, err := security.VerifyPassword("long-enough-password", stored.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("expected stored hash to verify, ok=%v err=%v", ok, err)
	}
}

func TestServiceSignupRejectsDuplicateUsername(t *testing.T) {
	existing := &models.User{ID: uuid.New(), Username: "taken", Email: "taken@example.com"}
	repo := &stubUserRepo{users: map[string]*models.User{existing.Username: existing}}
	svc := buildTestService(t, repo, testJWTConfig())

	_, err := svc.Signup(context.Background(), SignupRequest{
		Username: "Taken",
		Email:    "other@example.com",
		Password: "long-enough-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestServiceDeleteAccount(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "leaver", Email: "leaver@example.com"}
	repo := &stubUserRepo{users: map[string]*models.User{user.Username: user}}
	svc := buildTestService(t, repo, testJWTConfig())

	if err := svc.DeleteAccount(context.Background(), user.ID, user.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}
	if _, ok := repo.users[user.Username]; ok {
		t.Fatalf("expected user to be removed")
	}
}

func TestServiceDeleteAccountForbidsOtherUsers(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "victim", Email: "victim@example.com"}
	repo := &stubUserRepo{users: map[string]*models.User{user.Username: user}}
	svc := buildTestService(t, repo, testJWTConfig())

	err := svc.DeleteAccount(context.Background(), uuid.New(), user.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestServiceDeleteAccountMissingUser(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{}}
	svc := buildTestService(t, repo, testJWTConfig())

	id := uuid.New()
	err := svc.DeleteAccount(context.Background(), id, id)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func buildTestService(t *testing.T, repo *stubUserRepo, jwtCfg config.JWTConfig) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		JWTConfig:      jwtCfg,
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	s.users[user.Username] = user
	return user, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := s.users[username]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	for _, user := range s.users {
		if user.ID == id {
			user.LastLoginAt = &at
		}
	}
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for key, user := range s.users {
		if user.ID == id {
			delete(s.users, key)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
