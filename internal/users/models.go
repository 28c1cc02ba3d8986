package users

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/userdesk/userdesk/internal/storage"
)

const (
	prefix = "user:"

	prefixByID    = prefix + "id:"
	prefixByEmail = prefix + "email:"
)

type userModel struct {
	storage.BaseEntity

	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	IsAdmin      bool   `json:"is_admin"`
}

func newUserModel(draft UserDraft, passwordHash string) *userModel {
	return &userModel{
		BaseEntity: storage.BaseEntity{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         draft.Name,
		Email:        draft.Email,
		PasswordHash: passwordHash,
		IsAdmin:      draft.IsAdmin,
	}
}

// StorageKey implements storage.Entity.
func (u *userModel) StorageKey() string {
	return prefixByID + u.ID.String()
}

// StorageIndexes implements storage.Entity. The email index doubles as
// the uniqueness guard: Repository.Create refuses to overwrite it.
func (u *userModel) StorageIndexes() []string {
	return []string{prefixByEmail + u.Email}
}

// MarshalStorage implements storage.Entity.
func (u *userModel) MarshalStorage() ([]byte, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	return data, nil
}

// UnmarshalStorage implements storage.Entity.
func (u *userModel) UnmarshalStorage(value []byte) error {
	if err := json.Unmarshal(value, u); err != nil {
		return fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return nil
}

func (u *userModel) toDomain() *User {
	if u == nil {
		return nil
	}

	return &User{
		UserBase: UserBase{
			Name:    u.Name,
			Email:   u.Email,
			IsAdmin: u.IsAdmin,
		},
		ID:           u.ID,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (u *userModel) update(base UserBase, passwordHash string) {
	u.Name = base.Name
	u.Email = base.Email
	u.IsAdmin = base.IsAdmin
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
}
