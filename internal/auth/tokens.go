package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Codec issues and verifies signed session tokens. It is stateless: a
// token is a pure function of the subject, the secret and the clock.
type Codec struct {
	config Config
}

func NewCodec(config Config) *Codec {
	return &Codec{
		config: config,
	}
}

// Issue creates a signed token carrying the user ID as subject,
// expiring after the configured TTL.
func (c *Codec) Issue(userID uuid.UUID) (string, error) {
	claims := NewClaims(userID, c.config.Issuer, time.Now().Add(c.config.TokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(c.config.SecretKey)
}

// Decode verifies signature and expiry and returns the subject user
// ID. Every failure mode collapses into ErrTokenInvalid so callers
// cannot probe validation internals.
func (c *Codec) Decode(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return c.config.SecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired(), jwt.WithIssuer(c.config.Issuer))
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return userID, nil
}
