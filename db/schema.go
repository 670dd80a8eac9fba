// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL is shared by Postgres and SQLite, so it sticks to types and
// clauses both accept.
const schema = `
-- Villages (desa)
CREATE TABLE IF NOT EXISTS village (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    district TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Field posts (posko)
CREATE TABLE IF NOT EXISTS posko (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    village_id TEXT NOT NULL REFERENCES village(id) ON DELETE CASCADE,
    latitude DOUBLE PRECISION,
    longitude DOUBLE PRECISION,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_posko_village_id ON posko(village_id);

-- Children under five (balita)
CREATE TABLE IF NOT EXISTS balita (
    id TEXT PRIMARY KEY,
    child_name TEXT NOT NULL,
    parent_name TEXT NOT NULL,
    birth_date DATE NOT NULL,
    sex TEXT NOT NULL CHECK (sex IN ('male', 'female')),
    village_id TEXT NOT NULL REFERENCES village(id) ON DELETE CASCADE,
    posko_id TEXT REFERENCES posko(id) ON DELETE SET NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_balita_village_id ON balita(village_id);
CREATE INDEX IF NOT EXISTS idx_balita_posko_id ON balita(posko_id);

-- Anthropometric measurements with their computed assessment
CREATE TABLE IF NOT EXISTS measurement (
    id TEXT PRIMARY KEY,
    balita_id TEXT NOT NULL REFERENCES balita(id) ON DELETE CASCADE,
    weight_kg DOUBLE PRECISION NOT NULL CHECK (weight_kg > 0),
    height_cm DOUBLE PRECISION NOT NULL CHECK (height_cm > 0),
    head_circumference_cm DOUBLE PRECISION NOT NULL CHECK (head_circumference_cm > 0),
    arm_circumference_cm DOUBLE PRECISION NOT NULL CHECK (arm_circumference_cm > 0),
    position TEXT NOT NULL CHECK (position IN ('lying', 'standing')),
    age_months INTEGER NOT NULL,
    weight_for_age_z DOUBLE PRECISION NOT NULL,
    height_for_age_z DOUBLE PRECISION NOT NULL,
    weight_for_height_z DOUBLE PRECISION NOT NULL,
    head_circumference_z DOUBLE PRECISION NOT NULL,
    arm_circumference_z DOUBLE PRECISION NOT NULL,
    bmi_for_age_z DOUBLE PRECISION NOT NULL,
    weight_for_age_status TEXT NOT NULL,
    height_for_age_status TEXT NOT NULL,
    weight_for_height_status TEXT NOT NULL,
    head_circumference_status TEXT NOT NULL,
    arm_circumference_status TEXT NOT NULL,
    bmi_for_age_status TEXT NOT NULL,
    overall_status TEXT NOT NULL CHECK (overall_status IN ('green', 'yellow', 'red')),
    notes TEXT,
    sanitation TEXT,
    medical_history TEXT,
    measured_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_measurement_balita_id ON measurement(balita_id);
CREATE INDEX IF NOT EXISTS idx_measurement_overall_status ON measurement(overall_status);
CREATE INDEX IF NOT EXISTS idx_measurement_created_at ON measurement(created_at);
`
