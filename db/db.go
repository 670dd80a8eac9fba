// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Supported database types.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// DB is a *sql.DB that accepts Postgres-style $N placeholders on every
// backend.
type DB struct {
	*sql.DB
	Type string
}

// Tx is the transaction counterpart of DB.
type Tx struct {
	*sql.Tx
	dbType string
}

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*DB, error) {
	switch dbType {
	case Postgres:
	case SQLite:
		url = sqliteDSN(url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps :memory:
	// databases alive for the lifetime of the pool.
	if dbType == SQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: conn, Type: dbType}, nil
}

// sqliteDSN enables foreign keys and sortable timestamps.
func sqliteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_time_format=sqlite"
}

func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	return d.DB.Exec(Rebind(d.Type, query), args...)
}

func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return d.DB.Query(Rebind(d.Type, query), args...)
}

func (d *DB) QueryRow(query string, args ...any) *sql.Row {
	return d.DB.QueryRow(Rebind(d.Type, query), args...)
}

func (d *DB) Begin() (*Tx, error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, dbType: d.Type}, nil
}

func (t *Tx) Exec(query string, args ...any) (sql.Result, error) {
	return t.Tx.Exec(Rebind(t.dbType, query), args...)
}

func (t *Tx) QueryRow(query string, args ...any) *sql.Row {
	return t.Tx.QueryRow(Rebind(t.dbType, query), args...)
}

// Rebind rewrites $N placeholders to SQLite's ?N form. Queries for Postgres
// are returned unchanged.
func Rebind(dbType, query string) string {
	if dbType != SQLite || !strings.Contains(query, "$") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}
