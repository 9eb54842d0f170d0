package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"isolang/internal/language"
	"isolang/internal/logging"
)

// ErrNoExports is returned by LastExport when nothing has been exported yet.
var ErrNoExports = errors.New("catalog has no exports")

// Store manages the exported table backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// ExportInfo describes one recorded export.
type ExportInfo struct {
	ID         string    `json:"id"`
	ExportedAt time.Time `json:"exported_at"`
	Rows       int       `json:"rows"`
}

// Open initializes or connects to the catalog database and verifies its schema.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog path is required")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:     db,
		path:   path,
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Lookup reads one exported record. Missing codes wrap language.ErrNotFound.
func (s *Store) Lookup(ctx context.Context, code3 string) (language.Record, error) {
	var r language.Record
	err := s.db.QueryRowContext(ctx,
		`SELECT code3, alt_code3, code2, english, french FROM languages WHERE code3 = ?`,
		code3,
	).Scan(&r.Code3, &r.AltCode3, &r.Code2, &r.English, &r.French)
	if errors.Is(err, sql.ErrNoRows) {
		return language.Record{}, fmt.Errorf("catalog lookup: %w: %q", language.ErrNotFound, code3)
	}
	if err != nil {
		return language.Record{}, fmt.Errorf("catalog lookup %q: %w", code3, err)
	}
	return r, nil
}

// TwoLetterCodeFrom mirrors language.TwoLetterCodeFrom against the exported
// rows: unknown codes and codes without a two-letter form both yield "".
func (s *Store) TwoLetterCodeFrom(ctx context.Context, code3 string) (string, error) {
	r, err := s.Lookup(ctx, code3)
	if errors.Is(err, language.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return r.Code2, nil
}

// Count returns the number of exported records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM languages").Scan(&n); err != nil {
		return 0, fmt.Errorf("count languages: %w", err)
	}
	return n, nil
}

// LastExport returns the most recent export record.
func (s *Store) LastExport(ctx context.Context) (ExportInfo, error) {
	var (
		info      ExportInfo
		timestamp string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, exported_at, row_count FROM exports ORDER BY rowid DESC LIMIT 1`,
	).Scan(&info.ID, &timestamp, &info.Rows)
	if errors.Is(err, sql.ErrNoRows) {
		return ExportInfo{}, ErrNoExports
	}
	if err != nil {
		return ExportInfo{}, fmt.Errorf("read last export: %w", err)
	}
	info.ExportedAt, err = time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return ExportInfo{}, fmt.Errorf("parse export timestamp %q: %w", timestamp, err)
	}
	return info, nil
}
