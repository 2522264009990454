package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
)

// dummyHash is a bcrypt digest of a throwaway string. When a username does
// not resolve to an active employee we still run a bcrypt comparison against
// it, so the unknown-user path costs the same as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

const tokenBytes = 32

// AuthService implements login, logout and session validation on top of an
// employee repository and a session store.
type AuthService struct {
	repo       ports.EmployeeRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(repo ports.EmployeeRepository, sessions ports.SessionStore, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, sessionTTL: sessionTTL, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.SessionUser, error) {
	if username == "" || password == "" {
		return "", domain.SessionUser{}, domain.ErrInvalidCredentials
	}

	employee, err := s.repo.FindActiveByUsername(ctx, username)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		// Burn a comparison anyway so a missing user is indistinguishable
		// from a wrong password by timing.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", domain.SessionUser{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", domain.SessionUser{}, fmt.Errorf("find employee: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return "", domain.SessionUser{}, domain.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", domain.SessionUser{}, err
	}

	user := domain.SessionUserOf(employee)
	if err := s.sessions.Put(ctx, token, user, s.sessionTTL); err != nil {
		return "", domain.SessionUser{}, fmt.Errorf("store session: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("employee logged in")
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) Validate(ctx context.Context, token string) (domain.SessionUser, error) {
	if token == "" {
		return domain.SessionUser{}, domain.ErrUnauthorized
	}
	return s.sessions.Get(ctx, token)
}

// generateToken returns an unguessable opaque session token.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
