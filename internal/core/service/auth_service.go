package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/northstar/goals-api/internal/core/domain"
	"github.com/northstar/goals-api/internal/core/ports"
)

// AuthService implements registration, login and token-subject resolution.
type AuthService struct {
	repo     ports.AuthRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

// NewAuthService wires the auth use cases. A nil throttle disables login
// rate limiting.
func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	if throttle == nil {
		throttle = noopThrottle{}
	}
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies credentials and returns a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if err := s.throttle.Allow(ctx, email); err != nil {
		return "", err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		_ = s.throttle.RecordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		_ = s.throttle.RecordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}

	_ = s.throttle.Reset(ctx, email)
	s.logger.Info().Uint("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// CurrentUser resolves a validated token subject against the store. A deleted
// account therefore invalidates its outstanding tokens on the next request.
func (s *AuthService) CurrentUser(ctx context.Context, subject string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, subject)
}

// noopThrottle is used when no throttle backend is configured.
type noopThrottle struct{}

func (noopThrottle) Allow(context.Context, string) error         { return nil }
func (noopThrottle) RecordFailure(context.Context, string) error { return nil }
func (noopThrottle) Reset(context.Context, string) error         { return nil }
