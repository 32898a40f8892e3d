package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed access token for the given user identity.
	Generate(userID uuid.UUID, email string) (string, error)

	// Validate checks signature, issuer, audience and expiry of a token string.
	Validate(tokenString string) (*Claims, error)
}
