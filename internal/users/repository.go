package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/userdesk/userdesk/internal/storage"
)

// Repository persists users in BadgerDB, indexed by ID and by email.
type Repository struct {
	db    *badger.DB
	store *storage.Repository[*userModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db:    db,
		store: storage.NewRepository(func() *userModel { return new(userModel) }),
	}
}

// Create stores a new user. Email uniqueness is enforced here: the
// write fails with ErrDuplicateEmail when the email index is taken.
func (r *Repository) Create(_ context.Context, draft UserDraft, passwordHash string) (*User, error) {
	model := newUserModel(draft, passwordHash)

	err := r.db.Update(func(txn *badger.Txn) error {
		_, err := r.store.ReadByIndex(txn, prefixByEmail+model.Email)
		if err == nil {
			return ErrDuplicateEmail
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		return r.store.Write(txn, model)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return model.toDomain(), nil
}

// GetByID retrieves a user by ID.
func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	var model *userModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.store.Read(txn, prefixByID+id.String())
		if err != nil {
			return err
		}

		model = found
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.toDomain(), nil
}

// GetByEmail retrieves a user through the email index.
func (r *Repository) GetByEmail(_ context.Context, email string) (*User, error) {
	var model *userModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.store.ReadByIndex(txn, prefixByEmail+email)
		if err != nil {
			return err
		}

		model = found
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return model.toDomain(), nil
}

// List returns all users.
func (r *Repository) List(_ context.Context) ([]User, error) {
	var users []User

	err := r.db.View(func(txn *badger.Txn) error {
		models, err := r.store.List(txn, prefixByID)
		if err != nil {
			return err
		}

		users = make([]User, len(models))
		for i, model := range models {
			users[i] = *model.toDomain()
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Update applies the updater to the stored user. When the email
// changes, the old index entry is dropped and uniqueness of the new
// one is checked within the same transaction.
func (r *Repository) Update(_ context.Context, id uuid.UUID, updater func(*User) error) (*User, error) {
	var model *userModel

	err := r.db.Update(func(txn *badger.Txn) error {
		old, err := r.store.Read(txn, prefixByID+id.String())
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		user := old.toDomain()
		if updErr := updater(user); updErr != nil {
			return updErr
		}

		if user.Email != old.Email {
			_, idxErr := r.store.ReadByIndex(txn, prefixByEmail+user.Email)
			if idxErr == nil {
				return ErrDuplicateEmail
			}
			if !errors.Is(idxErr, storage.ErrNotFound) {
				return idxErr
			}

			if delErr := r.store.DeleteIndexes(txn, old); delErr != nil {
				return delErr
			}
		}

		old.update(user.UserBase, user.PasswordHash)
		model = old

		return r.store.Write(txn, old)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return model.toDomain(), nil
}

// Delete removes a user and its indexes.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return r.store.Delete(txn, prefixByID+id.String())
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
