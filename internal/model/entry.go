// Package model defines the journal data types.
package model

import "time"

// Journal operations.
const (
	OpEncode  = "encode"
	OpRemove  = "remove"
	OpRestore = "restore"
)

// Entry is one recorded mutation of a file.
type Entry struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	File      string    `json:"file"`
	ChunkType string    `json:"chunk_type"`
	Payload   []byte    `json:"payload"`
	CRC       uint32    `json:"crc"`
	CreatedAt time.Time `json:"created_at"`
	// RestoredFrom is set on restore entries.
	RestoredFrom string `json:"restored_from,omitempty"`
}

// ValidOps are the allowed journal operations.
var ValidOps = map[string]bool{
	OpEncode:  true,
	OpRemove:  true,
	OpRestore: true,
}
