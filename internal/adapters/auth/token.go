package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"communitycalendar/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTTokens issues and verifies HS256 JWTs signed with a shared secret.
// It implements both domain.TokenIssuer and domain.TokenVerifier.
type JWTTokens struct {
	secret []byte
}

var (
	_ domain.TokenIssuer   = (*JWTTokens)(nil)
	_ domain.TokenVerifier = (*JWTTokens)(nil)
)

// NewJWTTokens returns a JWTTokens using the given signing secret.
func NewJWTTokens(secret string) *JWTTokens {
	return &JWTTokens{secret: []byte(secret)}
}

func (j *JWTTokens) Issue(userID, email string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *JWTTokens) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return j.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}
