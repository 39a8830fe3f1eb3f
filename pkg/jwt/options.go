package jwt

import (
	"time"
)

// Option is a function that configures TokenConfig
type Option func(*TokenConfig)

// WithAccessTokenSecret sets the access token secret
func WithAccessTokenSecret(secret string) Option {
	return func(c *TokenConfig) {
		c.AccessTokenSecret = secret
	}
}

// WithAccessTokenExpiry sets the access token expiry duration
func WithAccessTokenExpiry(expiry time.Duration) Option {
	return func(c *TokenConfig) {
		c.AccessTokenExpiry = expiry
	}
}

// WithIssuer sets the issuer stamped on generated tokens
func WithIssuer(issuer string) Option {
	return func(c *TokenConfig) {
		c.Issuer = issuer
	}
}
