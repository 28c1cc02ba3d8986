package storage

import (
	"time"

	"github.com/google/uuid"
)

// Entity is anything the generic Repository can persist in BadgerDB.
type Entity interface {
	// StorageKey returns the primary key for the entity.
	StorageKey() string
	// StorageIndexes returns secondary index keys pointing at StorageKey.
	StorageIndexes() []string

	MarshalStorage() ([]byte, error)
	UnmarshalStorage(value []byte) error
}

// BaseEntity provides common fields for all storage entities.
type BaseEntity struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
