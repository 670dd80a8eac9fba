// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open supports PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite):

	conn, err := db.Open(db.SQLite, "sigana.db")

Queries are always written with Postgres-style $N placeholders; on SQLite
the DB and Tx wrappers rebind them to ?N. SQLite connections enable
foreign keys and are limited to a single open connection, so callers must
close a result set before issuing another query.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - village: desa with its district
  - posko: field posts, optionally geolocated
  - balita: registered children
  - measurement: raw values, age, six Z-scores, six labels, overall status,
    and the sanitation and medical-history questionnaires as JSON text

# Relationships

	village 1──* posko
	village 1──* balita
	posko   1──* balita   (ON DELETE SET NULL)
	balita  1──* measurement

All other foreign keys use ON DELETE CASCADE.
*/
package db
