package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of an operator access token.
type Claims struct {
	OperatorID uuid.UUID `json:"-"` // Parsed from the subject.
	Roles      []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating operator JWTs.
// Operators sign in elsewhere; this service only needs to trust their tokens.
type TokenService interface {
	// GenerateToken creates an access token for an operator.
	GenerateToken(operatorID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
