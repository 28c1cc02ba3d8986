package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users *Repository

	logger *zap.Logger
}

func NewService(users *Repository, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// Create hashes the draft's password and stores the user. The
// plaintext never reaches the repository.
func (s *Service) Create(ctx context.Context, draft UserDraft) (*User, error) {
	hash, err := HashPassword(draft.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, draft, hash)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Stringer("id", user.ID))

	return user, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.users.List(ctx)
}

// Update applies a partial update. A nil or empty Password leaves the
// stored hash untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*User, error) {
	return s.users.Update(ctx, id, func(user *User) error {
		if update.Name != nil {
			user.Name = *update.Name
		}
		if update.Email != nil {
			user.Email = *update.Email
		}
		if update.IsAdmin != nil {
			user.IsAdmin = *update.IsAdmin
		}
		if update.Password != nil && *update.Password != "" {
			hash, err := HashPassword(*update.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.Stringer("id", id))

	return nil
}

// HashPassword produces a bcrypt digest of the plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}
