// Package sqlstore holds the SQL shared by the SQLite and PostgreSQL providers.
// Statements are written with ? placeholders and rebound for PostgreSQL.
package sqlstore

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/julianstephens/cronograma/internal/storage"
)

type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Queries runs the entity statements against an open database.
type Queries struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, dialect Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

// DB exposes the underlying handle.
func (q *Queries) DB() *sql.DB {
	return q.db
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (q *Queries) rebind(query string) string {
	if q.dialect != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (q *Queries) exec(query string, args ...interface{}) (sql.Result, error) {
	return q.db.Exec(q.rebind(query), args...)
}

func (q *Queries) query(query string, args ...interface{}) (*sql.Rows, error) {
	return q.db.Query(q.rebind(query), args...)
}

func (q *Queries) queryRow(query string, args ...interface{}) *sql.Row {
	return q.db.QueryRow(q.rebind(query), args...)
}

// execOne runs a statement that must touch exactly one row.
func (q *Queries) execOne(query string, args ...interface{}) error {
	res, err := q.exec(query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// notFound maps sql.ErrNoRows to storage.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	return err
}

// nullable stores empty strings as NULL for optional foreign keys.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
