package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the claims carried by admin bearer tokens.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token grants role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// TokenService issues and validates admin bearer tokens. Tokens are minted by
// the pricing-admin tooling; this service only needs to check them.
type TokenService interface {
	// GenerateToken signs a token for subject with roles.
	GenerateToken(subject string, roles []string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
