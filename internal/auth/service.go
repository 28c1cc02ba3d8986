package auth

import (
	"context"

	"github.com/userdesk/userdesk/internal/users"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service orchestrates credential validation, token issuance and
// per-request session resolution.
type Service struct {
	codec *Codec
	users *users.Service

	logger *zap.Logger
}

func NewService(codec *Codec, users *users.Service, logger *zap.Logger) *Service {
	return &Service{
		codec: codec,
		users: users,

		logger: logger,
	}
}

// Login validates an email/password pair and issues a session token.
// Unknown email and wrong password both return ErrInvalidCredentials;
// nothing in the result distinguishes the two cases.
func (s *Service) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		loginAttempts.WithLabelValues(loginResultFailure).Inc()
		s.logger.Debug("login failed", zap.String("email", email))

		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		loginAttempts.WithLabelValues(loginResultFailure).Inc()
		s.logger.Debug("login failed", zap.String("email", email))

		return nil, "", ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	loginAttempts.WithLabelValues(loginResultSuccess).Inc()

	return user, token, nil
}

// Resolve classifies an extracted credential. It is read-only and
// idempotent for an unchanged user store.
func (s *Service) Resolve(ctx context.Context, token string, present bool) Session {
	if !present {
		return Session{State: StateAnonymous}
	}

	userID, err := s.codec.Decode(token)
	if err != nil {
		return Session{State: StateInvalid}
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return Session{State: StateUnknown}
	}

	return Session{State: StateAuthenticated, User: user}
}
