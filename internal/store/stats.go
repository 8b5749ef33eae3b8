package store

import (
	"context"
	"os"
)

// Stats holds journal statistics.
type Stats struct {
	DBPath       string      `json:"db_path"`
	DBSizeBytes  int64       `json:"db_size_bytes"`
	TotalEntries int         `json:"total_entries"`
	Files        int         `json:"files"`
	Ops          []OpStats   `json:"ops"`
	Types        []TypeStats `json:"chunk_types"`
}

// OpStats holds per-operation counts.
type OpStats struct {
	Op    string `json:"op"`
	Count int    `json:"count"`
}

// TypeStats holds per-chunk-type counts.
type TypeStats struct {
	ChunkType string `json:"chunk_type"`
	Count     int    `json:"count"`
}

// Stats returns journal statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&st.TotalEntries)
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT file) FROM entries`).Scan(&st.Files)

	rows, err := s.db.QueryContext(ctx,
		`SELECT op, COUNT(*) AS cnt FROM entries GROUP BY op ORDER BY cnt DESC, op`)
	if err != nil {
		return st, err
	}
	for rows.Next() {
		var o OpStats
		rows.Scan(&o.Op, &o.Count)
		st.Ops = append(st.Ops, o)
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx,
		`SELECT chunk_type, COUNT(*) AS cnt FROM entries GROUP BY chunk_type ORDER BY cnt DESC, chunk_type`)
	if err != nil {
		return st, err
	}
	defer rows.Close()
	for rows.Next() {
		var ts TypeStats
		rows.Scan(&ts.ChunkType, &ts.Count)
		st.Types = append(st.Types, ts)
	}

	return st, nil
}
