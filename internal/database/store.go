package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"agenda/internal/fileutil"
	"agenda/internal/logging"
)

// ErrLocked is returned when another process holds the database lock past
// the configured timeout.
var ErrLocked = errors.New("database is locked by another process")

const lockRetryDelay = 50 * time.Millisecond

// Options tunes Store behaviour.
type Options struct {
	// Backup copies the current file to <path>.bak before each write.
	Backup bool
	// LockTimeout bounds how long Update waits for the lock. Zero means a
	// single attempt.
	LockTimeout time.Duration
}

// Store serializes read-modify-write cycles on one database file.
type Store struct {
	path   string
	opts   Options
	logger *slog.Logger
}

// NewStore returns a store for the document at path.
func NewStore(path string, opts Options, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "database"),
	}
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Load opens the document without taking the lock.
func (s *Store) Load() (*Document, error) {
	doc, status, err := s.open()
	if status == statusUnrecognized {
		return doc, nil
	}
	return doc, err
}

// Update loads the document, applies fn and persists the result when fn
// reports a change. The lock is held for the whole cycle. A file that is
// valid JSON but not a calendar document is never replaced; the change fails
// with ErrUnrecognized instead.
func (s *Store) Update(ctx context.Context, fn func(*Document) bool) (bool, error) {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()

	doc, status, err := s.open()
	if err != nil && status != statusUnrecognized {
		return false, err
	}
	if !fn(doc) {
		s.logger.Debug("database unchanged", logging.String(logging.FieldPath, s.path))
		return false, nil
	}
	if status == statusUnrecognized {
		return false, fmt.Errorf("refusing to overwrite %s: %w", s.path, err)
	}

	if s.opts.Backup {
		s.backup()
	}
	if err := Write(s.path, doc); err != nil {
		return false, err
	}
	s.logger.Debug("database written", logging.String(logging.FieldPath, s.path))
	return true, nil
}

// open loads the document and logs how the file was found. Like the package
// level open, an unrecognized layout comes back as an empty document plus the
// decode error.
func (s *Store) open() (*Document, openStatus, error) {
	doc, status, err := open(s.path)
	if status == statusUnrecognized {
		logging.WarnWithContext(s.logger, "database file has an unrecognized layout",
			"database_unrecognized",
			logging.String(logging.FieldPath, s.path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix the file by hand; agenda will not overwrite it"),
			logging.String(logging.FieldImpact, "changes are refused until the file is fixed"))
		return doc, status, err
	}
	if err != nil {
		return nil, status, err
	}
	switch status {
	case statusCreated:
		s.logger.Info("created empty database", logging.String(logging.FieldPath, s.path))
	case statusMalformed:
		logging.WarnWithContext(s.logger, "database file is not valid JSON",
			"database_malformed",
			logging.String(logging.FieldPath, s.path),
			logging.String(logging.FieldErrorHint, "fix or remove the file; the next write replaces it"),
			logging.String(logging.FieldImpact, "existing events are ignored for this run"))
	}
	return doc, status, nil
}

func (s *Store) acquire(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	lockPath := s.path + ".lock"
	lock := flock.New(lockPath)

	var (
		ok  bool
		err error
	)
	if s.opts.LockTimeout > 0 {
		lockCtx, cancel := context.WithTimeout(ctx, s.opts.LockTimeout)
		defer cancel()
		ok, err = lock.TryLockContext(lockCtx, lockRetryDelay)
	} else {
		ok, err = lock.TryLock()
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release database lock",
				logging.String(logging.FieldPath, lockPath),
				logging.Error(err))
		}
	}, nil
}

func (s *Store) backup() {
	info, err := os.Stat(s.path)
	if err != nil || info.Size() == 0 {
		return
	}
	dst := s.path + ".bak"
	if err := fileutil.CopyFile(s.path, dst); err != nil {
		logging.WarnWithContext(s.logger, "database backup failed",
			"database_backup_failed",
			logging.String(logging.FieldPath, dst),
			logging.Error(err),
			logging.String(logging.FieldImpact, "previous version is not preserved"))
	}
}
