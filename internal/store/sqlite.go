package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/UberChili/pngmev2/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite journal at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newID returns ids that sort in creation order, even within one millisecond.
func (s *SQLiteStore) newID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id            TEXT PRIMARY KEY,
		op            TEXT NOT NULL,
		file          TEXT NOT NULL,
		chunk_type    TEXT NOT NULL,
		payload       BLOB NOT NULL,
		crc           INTEGER NOT NULL,
		restored_from TEXT,
		created_at    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_file ON entries(file);
	CREATE INDEX IF NOT EXISTS idx_entries_op ON entries(op);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Record(ctx context.Context, p RecordParams) (*model.Entry, error) {
	if !model.ValidOps[p.Op] {
		return nil, fmt.Errorf("invalid op %q", p.Op)
	}
	now := time.Now().UTC()
	id := s.newID(now)

	payload := p.Payload
	if payload == nil {
		payload = []byte{}
	}

	var restoredFrom *string
	if p.RestoredFrom != "" {
		restoredFrom = &p.RestoredFrom
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, op, file, chunk_type, payload, crc, restored_from, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Op, p.File, p.ChunkType, payload, int64(p.CRC), restoredFrom,
		now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	return &model.Entry{
		ID:           id,
		Op:           p.Op,
		File:         p.File,
		ChunkType:    p.ChunkType,
		Payload:      payload,
		CRC:          p.CRC,
		CreatedAt:    now,
		RestoredFrom: p.RestoredFrom,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, op, file, chunk_type, payload, crc, restored_from, created_at
		 FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Entry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	args := []interface{}{}

	if p.File != "" {
		where = append(where, "file = ?")
		args = append(args, p.File)
	}
	if p.Op != "" {
		where = append(where, "op = ?")
		args = append(args, p.Op)
	}

	query := `SELECT id, op, file, chunk_type, payload, crc, restored_from, created_at
	          FROM entries WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

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

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var crc int64
	var restoredFrom sql.NullString
	var createdAt string

	err := row.Scan(&e.ID, &e.Op, &e.File, &e.ChunkType, &e.Payload, &crc, &restoredFrom, &createdAt)
	if err != nil {
		return e, err
	}

	e.CRC = uint32(crc)
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if restoredFrom.Valid {
		e.RestoredFrom = restoredFrom.String
	}
	return e, nil
}
