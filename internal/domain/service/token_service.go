package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and validating bearer
// tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token asserting the user's
	// id, email and roles with issuer, audience and expiry.
	GenerateToken(userID uuid.UUID, email string, roles []string) (string, error)

	// ValidateToken checks signature, issuer, audience and expiry, and
	// returns the parsed claims.
	ValidateToken(tokenString string) (*Claims, error)
}
