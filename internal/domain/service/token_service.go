package service

import (
	"github.com/golang-jwt/jwt/v5"

	"hubmark/internal/domain/entity"
)

// Claims defines the claims carried by an access token. The subject is the
// username; everything else is standard registered claims (iat, exp, iss, aud).
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: validity is purely cryptographic plus time-based, and
// nothing is stored server-side.
type TokenService interface {
	// Issue creates a signed token bound to the given user's identity.
	Issue(user *entity.User) (string, error)

	// Validate parses and verifies a token string. It fails on signature
	// mismatch, issuer/audience mismatch, or an expiry in the past, with
	// no clock-skew allowance.
	Validate(tokenString string) (*Claims, error)
}
