package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the claims carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims creates claims for the given subject identifier. The
// subject is the user ID in its canonical textual form; raw binary
// identifiers do not embed safely in JWT claims.
func NewClaims(userID uuid.UUID, issuer string, expiresAt time.Time) *Claims {
	now := time.Now()

	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
}
