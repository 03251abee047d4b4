package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// errStopRetry is matched by criticalError and terminates the lock retry loop
var errStopRetry = errors.New("stop retry")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error { return e.err }

func (e *criticalError) Is(target error) bool { return target == errStopRetry }

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// withLockRetry runs a write, retrying only on lock errors
func withLockRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: err}
		}
		return nil
	}, errStopRetry)

	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// inTx runs fn in a transaction, rolled back on any error
func inTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// stringsSQL is a []string stored as a JSON array
type stringsSQL []string

// Value implements driver.Valuer for database storage
func (s stringsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsSQL) Scan(value any) error {
	*s = stringsSQL{}
	data, ok := jsonBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(data, s)
}

// objectSQL is a JSON object column
type objectSQL map[string]any

// Value implements driver.Valuer for database storage
func (o objectSQL) Value() (driver.Value, error) {
	if o == nil {
		return "{}", nil
	}
	b, err := json.Marshal(o)
	return string(b), err
}

// Scan implements sql.Scanner for database retrieval
func (o *objectSQL) Scan(value any) error {
	*o = objectSQL{}
	data, ok := jsonBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(data, o)
}

// labelsSQL is a map of string labels stored as a JSON object
type labelsSQL map[string]string

// Value implements driver.Valuer for database storage
func (l labelsSQL) Value() (driver.Value, error) {
	if l == nil {
		return "{}", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Scan implements sql.Scanner for database retrieval
func (l *labelsSQL) Scan(value any) error {
	*l = labelsSQL{}
	data, ok := jsonBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(data, l)
}

func jsonBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, len(v) > 0
	case string:
		return []byte(v), v != ""
	default:
		return nil, false
	}
}

func utc(t time.Time) time.Time {
	return t.UTC()
}
