package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/pizzanow/ordering-system/internal/core/domain"
	"github.com/pizzanow/ordering-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger

	// dummyHash is compared against when the username is unknown so that the
	// unknown-user and wrong-password paths cost roughly the same.
	dummyHash string
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	dummy, err := hasher.Hash("decoy-password")
	if err != nil {
		dummy = ""
	}
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
		dummyHash: dummy,
	}
}

// Register hashes the password and persists a new account. The repository is
// handed the finished hash only; hashing policy lives in the PasswordHasher.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Msg("failed to create user")
		}
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed bearer token. An
// unknown username and a failed password check are collapsed into
// domain.ErrInvalidCredentials so the outcome never reveals whether the
// username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison anyway; see dummyHash.
			s.hasher.Check(password, s.dummyHash)
			return "", domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("user lookup failed")
		return "", err
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return "", err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return signed, nil
}

// UserByUsername resolves the account behind a verified token subject.
func (s *AuthService) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}
