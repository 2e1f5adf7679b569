package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for bearer tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens.
// Verification is stateless: no revocation list is consulted.
type TokenService interface {
	// Issue creates a token for the user valid for TTL.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the claims.
	Verify(tokenString string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
