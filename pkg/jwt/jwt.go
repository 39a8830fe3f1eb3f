// Package jwt issues and validates the HS256 access tokens that identify API callers.
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token
type TokenClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

const (
	// Error messages
	ErrAccessTokenSecretRequired = "access token secret is required"
	ErrUserIDRequired            = "user id is required"
	ErrInvalidTokenType          = "invalid token type"
	ErrInvalidToken              = "invalid token"
	ErrUnexpectedSigningMethod   = "unexpected signing method"
)
