package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"isolang/internal/language"
	"isolang/internal/logging"
)

// ErrLocked reports that another export held the catalog lock until the
// context expired.
var ErrLocked = errors.New("catalog is locked by another export")

const lockRetryDelay = 100 * time.Millisecond

// ExportResult summarizes a completed export.
type ExportResult struct {
	ExportInfo
	Path     string        `json:"path"`
	LockPath string        `json:"lock_path"`
	Elapsed  time.Duration `json:"elapsed"`
}

// LockPath returns the advisory lock file guarding exports.
func (s *Store) LockPath() string {
	return s.path + ".lock"
}

// Export replaces the stored table with records. The catalog lock is retried
// until ctx is done.
func (s *Store) Export(ctx context.Context, records []language.Record) (ExportResult, error) {
	started := time.Now()
	lock := flock.New(s.LockPath())
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ExportResult{}, fmt.Errorf("%w: %s: %w", ErrLocked, s.LockPath(), ctxErr)
		}
		return ExportResult{}, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return ExportResult{}, fmt.Errorf("%w: %s", ErrLocked, s.LockPath())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release catalog lock", logging.Error(err), logging.String("lock", s.LockPath()))
		}
	}()

	info := ExportInfo{
		ID:         uuid.NewString(),
		ExportedAt: time.Now().UTC(),
		Rows:       len(records),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExportResult{}, fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM languages"); err != nil {
		return ExportResult{}, fmt.Errorf("clear languages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO languages (code3, alt_code3, code2, english, french) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return ExportResult{}, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Code3, r.AltCode3, r.Code2, r.English, r.French); err != nil {
			return ExportResult{}, fmt.Errorf("insert %q: %w", r.Code3, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO exports (id, exported_at, row_count) VALUES (?, ?, ?)",
		info.ID, info.ExportedAt.Format(time.RFC3339Nano), info.Rows,
	); err != nil {
		return ExportResult{}, fmt.Errorf("record export: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ExportResult{}, fmt.Errorf("commit export: %w", err)
	}

	result := ExportResult{
		ExportInfo: info,
		Path:       s.path,
		LockPath:   s.LockPath(),
		Elapsed:    time.Since(started),
	}
	logging.WithContext(ctx, s.logger).Info("catalog exported",
		logging.String("export_id", info.ID),
		logging.Int("rows", info.Rows),
		logging.String("path", s.path),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}
