package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pizzanow/ordering-system/internal/core/domain"
	"github.com/pizzanow/ordering-system/internal/infrastructure/crypto"
	"github.com/pizzanow/ordering-system/internal/infrastructure/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
	// failWith forces every call to return this error when non-nil.
	failWith error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newAuthService(t *testing.T, repo *stubUserRepo) *AuthService {
	t.Helper()
	iss, err := token.NewIssuer("test-secret", "HS256")
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return NewAuthService(repo, crypto.NewBcryptHasher(4), iss, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	user, err := svc.Register(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}
	if user.PasswordHash == "" || user.PasswordHash == "pass123" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}

	stored := repo.users["alice"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("plaintext reached the repository")
	}
}

func TestAuthService_Register_EmptyInput(t *testing.T) {
	svc := newAuthService(t, newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate register left %d users", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	signed, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}

	iss, _ := token.NewIssuer("test-secret", "HS256")
	subject, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != "carol" {
		t.Fatalf("expected subject carol, got %q", subject)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	_, _ = svc.Register(context.Background(), "dave", "goodpass")
	if _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	_, _ = svc.Register(context.Background(), "erin", "goodpass")

	_, unknownErr := svc.Login(context.Background(), "ghost", "whatever")
	_, wrongErr := svc.Login(context.Background(), "erin", "badpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if unknownErr != wrongErr {
		t.Fatalf("unknown-user and wrong-password outcomes differ: %v vs %v", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.failWith = errors.New("connection refused")
	svc := newAuthService(t, repo)

	_, err := svc.Login(context.Background(), "any", "pass")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("infrastructure failure must not masquerade as bad credentials")
	}
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestAuthService_UserByUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	_, _ = svc.Register(context.Background(), "frank", "pass")

	user, err := svc.UserByUsername(context.Background(), "frank")
	if err != nil {
		t.Fatalf("UserByUsername: %v", err)
	}
	if user.Username != "frank" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.UserByUsername(context.Background(), "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
