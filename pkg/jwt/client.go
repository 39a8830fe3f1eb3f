package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Default secret for development/testing
	DefaultAccessTokenSecret = "default-access-secret"

	// Token types
	TokenTypeAccess = "access"

	// Issuer
	DefaultIssuer = "vendor-management-service"
)

// JWTClient defines the interface for JWT token operations
type JWTClient interface {
	GenerateAccessToken(userID string) (string, error)
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
	GetConfig() TokenConfig
	GetTokenExpiration(tokenString string) (time.Time, error)
	IsTokenExpired(tokenString string) (bool, error)
}

// Client represents a JWT client that handles token operations
type Client struct {
	config TokenConfig
	now    func() time.Time
}

// New creates a new JWT client with the provided options
func New(opts ...Option) (JWTClient, error) {
	config := TokenConfig{
		AccessTokenSecret: DefaultAccessTokenSecret,
		AccessTokenExpiry: time.Minute * 15,
		Issuer:            DefaultIssuer,
	}

	for _, opt := range opts {
		opt(&config)
	}

	if config.AccessTokenSecret == "" {
		return nil, errors.New(ErrAccessTokenSecretRequired)
	}

	return &Client{
		config: config,
		now:    time.Now,
	}, nil
}

// GenerateAccessToken generates a new access token
func (c *Client) GenerateAccessToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New(ErrUserIDRequired)
	}

	now := c.now()
	claims := TokenClaims{
		UserID:    userID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(c.config.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    c.config.Issuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.config.AccessTokenSecret))
}

// ValidateAccessToken parses the token, checks its signature, expiry and issuer
func (c *Client) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := c.parse(tokenString, jwt.WithIssuer(c.config.Issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New(ErrInvalidToken)
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, errors.New(ErrInvalidTokenType)
	}
	if claims.UserID == "" {
		return nil, errors.New(ErrUserIDRequired)
	}

	return claims, nil
}

func (c *Client) parse(tokenString string, opts ...jwt.ParserOption) (*jwt.Token, error) {
	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	return jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(ErrUnexpectedSigningMethod)
		}
		return []byte(c.config.AccessTokenSecret), nil
	}, opts...)
}

// GetConfig returns the token configuration
func (c *Client) GetConfig() TokenConfig {
	return c.config
}

// GetTokenExpiration returns the expiration time of a token without validating its lifetime
func (c *Client) GetTokenExpiration(tokenString string) (time.Time, error) {
	token, err := c.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return time.Time{}, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok {
		if claims.ExpiresAt != nil {
			return claims.ExpiresAt.Time, nil
		}
		return time.Time{}, errors.New("token has no expiration")
	}

	return time.Time{}, errors.New("invalid token claims")
}

// IsTokenExpired reports whether the token has passed its expiration time
func (c *Client) IsTokenExpired(tokenString string) (bool, error) {
	expiration, err := c.GetTokenExpiration(tokenString)
	if err != nil {
		return false, err
	}
	return c.now().After(expiration), nil
}
