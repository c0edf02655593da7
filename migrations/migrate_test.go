// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself, no expectations are set

	err = Migrate(db, DriverPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DriverPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.ErrorIs(t, err, ErrUnknownDriver)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DriverSQLite))
	// applying twice is a no-op
	require.NoError(t, Migrate(db, DriverSQLite))

	_, err = db.Exec(`INSERT INTO users (id, email, hashed_password) VALUES ('1', 'a@x.com', 'h')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (id, email, hashed_password) VALUES ('2', 'a@x.com', 'h')`)
	assert.Error(t, err, "email must be unique")

	var timezone string
	var active bool
	require.NoError(t, db.QueryRow(`SELECT timezone, is_active FROM users WHERE id = '1'`).Scan(&timezone, &active))
	assert.Equal(t, "UTC", timezone)
	assert.True(t, active)
}
