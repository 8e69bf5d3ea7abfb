package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user and registration operations.
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrInvalidRegistrationCode = errors.New("invalid registration code")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrCaptchaFailed           = errors.New("verification answer incorrect")
)

// User represents a registered admin user. Any authenticated user is
// treated as admin-equivalent; there is no role field.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegistrationCode is a shared secret permitting self-service account
// creation. Codes are multi-use until deactivated.
type RegistrationCode struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterInput carries a validated registration request.
type RegisterInput struct {
	Email        string
	Password     string
	Name         *string
	RegisterCode string
}

// Credentials carries a login attempt. The arithmetic challenge is
// generated client-side and merely re-submitted; the service checks the
// answer before touching credentials.
type Credentials struct {
	Email         string
	Password      string
	CaptchaA      int
	CaptchaB      int
	CaptchaAnswer int
}

// PasswordHasher is a one-way adaptive hash with a configurable work factor.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues session tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns the user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// RegistrationCodeRepository looks up registration codes.
type RegistrationCodeRepository interface {
	// GetActiveByCode returns the active code matching exactly, or
	// ErrNotFound when the code is absent or inactive.
	GetActiveByCode(ctx context.Context, code string) (*RegistrationCode, error)
}

// AuthService defines registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, creds Credentials) (token string, err error)
}
