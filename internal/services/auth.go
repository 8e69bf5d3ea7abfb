package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"communitycalendar/internal/domain"
)

type authService struct {
	userRepo       domain.UserRepository
	codeRepo       domain.RegistrationCodeRepository
	hasher         domain.PasswordHasher
	tokens         domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewAuthService creates an AuthService handling registration and login.
func NewAuthService(
	userRepo domain.UserRepository,
	codeRepo domain.RegistrationCodeRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.AuthService {
	return &authService{
		userRepo:       userRepo,
		codeRepo:       codeRepo,
		hasher:         hasher,
		tokens:         tokens,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

// Register enrolls a new admin. The registration code must exist and be
// active; codes stay usable until deactivated. The email must be unused.
func (s *authService) Register(ctx context.Context, in domain.RegisterInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.codeRepo.GetActiveByCode(ctx, in.RegisterCode); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidRegistrationCode
		}
		return fmt.Errorf("look up registration code: %w", err)
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("look up user by email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         in.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login checks the arithmetic challenge before touching credentials, then
// verifies the password and issues a session token. The challenge numbers
// come from the client and are not bound to a server-issued nonce; the
// check is cosmetic.
func (s *authService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if creds.CaptchaA+creds.CaptchaB != creds.CaptchaAnswer {
		return "", domain.ErrCaptchaFailed
	}

	email := strings.TrimSpace(strings.ToLower(creds.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("look up user by email: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
