package store

import (
	"context"

	"github.com/UberChili/pngmev2/internal/model"
)

// ExportAll returns every entry oldest first, optionally filtered by file.
func (s *SQLiteStore) ExportAll(ctx context.Context, file string) ([]model.Entry, error) {
	query := `SELECT id, op, file, chunk_type, payload, crc, restored_from, created_at FROM entries`
	args := []interface{}{}
	if file != "" {
		query += ` WHERE file = ?`
		args = append(args, file)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Import records entries from an export as new entries. Ids and timestamps
// are reassigned; restore links are dropped since the old ids no longer exist.
func (s *SQLiteStore) Import(ctx context.Context, entries []model.Entry) (int, error) {
	imported := 0
	for _, e := range entries {
		_, err := s.Record(ctx, RecordParams{
			Op:        e.Op,
			File:      e.File,
			ChunkType: e.ChunkType,
			Payload:   e.Payload,
			CRC:       e.CRC,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
