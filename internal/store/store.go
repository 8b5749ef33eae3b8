// Package store provides the journal storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/UberChili/pngmev2/internal/model"
)

// ErrEntryNotFound is returned by Get for an unknown id.
var ErrEntryNotFound = errors.New("journal entry not found")

// RecordParams holds parameters for recording a mutation.
type RecordParams struct {
	Op           string
	File         string
	ChunkType    string
	Payload      []byte
	CRC          uint32
	RestoredFrom string
}

// ListParams holds parameters for listing entries.
type ListParams struct {
	File  string
	Op    string
	Limit int
}

// Store defines the journal interface.
type Store interface {
	// Record appends an entry and returns it.
	Record(ctx context.Context, p RecordParams) (*model.Entry, error)

	// Get retrieves an entry by id.
	Get(ctx context.Context, id string) (*model.Entry, error)

	// List returns entries newest first.
	List(ctx context.Context, p ListParams) ([]model.Entry, error)

	// Close closes the store.
	Close() error
}
