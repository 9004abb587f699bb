package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

var (
	// ErrAdapterUnavailable is returned before any I/O when no database
	// handle was configured.
	ErrAdapterUnavailable = errors.New("backend not configured")
	ErrNotFound           = errors.New("record not found")
)

// RemoteError wraps every failure reported by the database.
type RemoteError struct {
	Op    string
	Table string
	Err   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Repository is the adapter shape shared by every tracker except prayers.
type Repository[T any, P any] interface {
	All(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, id string, patch P) error
	Delete(ctx context.Context, id string) error
}

// isoLayout keeps a fixed width so lexical order on the column is chronological.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func isoTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: isoTime(*t), Valid: true}
}

func nullText(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func parseTime(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t.UTC(), true
	}
	t, err = time.Parse(model.DayLayout, s)
	if err == nil {
		return t, true
	}
	return time.Time{}, false
}

// timeOrNow reads a mandatory date, defaulting a missing value to now.
func timeOrNow(ns sql.NullString) time.Time {
	if ns.Valid {
		if t, ok := parseTime(ns.String); ok {
			return t
		}
	}
	return time.Now().UTC()
}

// optTime reads an optional date; missing stays nil.
func optTime(ns sql.NullString) *time.Time {
	if !ns.Valid {
		return nil
	}
	t, ok := parseTime(ns.String)
	if !ok {
		return nil
	}
	return &t
}

func optTimeArg(o model.Opt[time.Time]) sql.NullString {
	return nullTime(o.Ptr())
}

// changes collects the columns of a partial update in the order they were set.
type changes struct {
	cols []string
	args []any
}

func (c *changes) set(col string, v any) {
	c.cols = append(c.cols, col)
	c.args = append(c.args, v)
}

func (c *changes) empty() bool {
	return len(c.cols) == 0
}

func (c *changes) query(table, id string) (string, []any) {
	assignments := make([]string, len(c.cols))
	for i, col := range c.cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(assignments, ", "), len(c.cols)+1)
	return query, append(c.args, id)
}

// table holds what every adapter needs: the injected handle and its table name.
type table struct {
	db   *sqlx.DB
	name string
}

func (t table) conn() (*sqlx.DB, error) {
	if t.db == nil {
		return nil, ErrAdapterUnavailable
	}
	return t.db, nil
}

func (t table) fail(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{Op: op, Table: t.name, Err: err}
}

func (t table) selectAll(ctx context.Context, dest any, query string) error {
	db, err := t.conn()
	if err != nil {
		return err
	}
	return t.fail("select", db.SelectContext(ctx, dest, query))
}

func (t table) insert(ctx context.Context, query string, args ...any) error {
	db, err := t.conn()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, query, args...)
	return t.fail("insert", err)
}

// update applies c to the row with id. An empty change set only checks
// that the row exists.
func (t table) update(ctx context.Context, id string, c changes) error {
	db, err := t.conn()
	if err != nil {
		return err
	}

	if c.empty() {
		var count int
		err = db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+t.name+" WHERE id = $1", id)
		if err != nil {
			return t.fail("update", err)
		}
		if count == 0 {
			return t.fail("update", ErrNotFound)
		}
		return nil
	}

	query, args := c.query(t.name, id)
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return t.fail("update", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return t.fail("update", err)
	}

	if rows == 0 {
		return t.fail("update", ErrNotFound)
	}

	return nil
}

// delete is idempotent: removing a missing row succeeds.
func (t table) delete(ctx context.Context, id string) error {
	db, err := t.conn()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, "DELETE FROM "+t.name+" WHERE id = $1", id)
	return t.fail("delete", err)
}
