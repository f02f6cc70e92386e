// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: session/journal.go
// Summary: SQLite journal of session launches.

package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"

	"github.com/framegrace/texelsettings/settings"
)

// Entry is one journaled launch.
type Entry struct {
	ID                int64
	LaunchedAt        time.Time
	ProfileID         uuid.UUID
	ProfileName       string
	Commandline       string
	StartingDirectory string
	Title             string
	Rows              int
	Cols              int
}

const journalSchema = `
CREATE TABLE IF NOT EXISTS launches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    launched_at INTEGER NOT NULL,     -- UnixNano
    profile_id TEXT NOT NULL,
    profile_name TEXT NOT NULL,
    commandline TEXT NOT NULL,
    starting_dir TEXT NOT NULL,
    title TEXT NOT NULL,
    rows INTEGER NOT NULL,
    cols INTEGER NOT NULL
);

-- Index for newest-first listing
CREATE INDEX IF NOT EXISTS idx_launches_time ON launches(launched_at);
`

// Journal records session launches in a SQLite database. It journals
// sessions, never settings; the settings files stay read-only.
type Journal struct {
	db *sql.DB
	mu sync.Mutex
}

// DefaultJournalPath returns the stock journal location next to the
// settings file.
func DefaultJournalPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelsettings", "journal.db"), nil
}

// OpenJournal opens (creating if needed) the journal database at dbPath.
func OpenJournal(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(journalSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Record appends one entry. LaunchedAt defaults to now when zero.
func (j *Journal) Record(e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	when := e.LaunchedAt
	if when.IsZero() {
		when = time.Now()
	}

	_, err := j.db.Exec(
		`INSERT INTO launches (launched_at, profile_id, profile_name, commandline, starting_dir, title, rows, cols)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		when.UnixNano(), e.ProfileID.String(), e.ProfileName,
		e.Commandline, e.StartingDirectory, e.Title, e.Rows, e.Cols,
	)
	if err != nil {
		return fmt.Errorf("failed to record launch: %w", err)
	}
	return nil
}

// RecordLaunch journals a resolved record about to be launched.
func (j *Journal) RecordLaunch(id uuid.UUID, es *settings.EffectiveSettings) error {
	return j.Record(Entry{
		ProfileID:         id,
		ProfileName:       es.ProfileName(),
		Commandline:       es.Commandline(),
		StartingDirectory: es.StartingDirectory(),
		Title:             es.StartingTitle(),
		Rows:              es.InitialRows(),
		Cols:              es.InitialCols(),
	})
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, launched_at, profile_id, profile_name, commandline, starting_dir, title, rows, cols
		 FROM launches ORDER BY launched_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query launches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var launched int64
		var profileID string
		if err := rows.Scan(&e.ID, &launched, &profileID, &e.ProfileName,
			&e.Commandline, &e.StartingDirectory, &e.Title, &e.Rows, &e.Cols); err != nil {
			return nil, fmt.Errorf("failed to scan launch: %w", err)
		}
		e.LaunchedAt = time.Unix(0, launched)
		if id, err := uuid.Parse(profileID); err == nil {
			e.ProfileID = id
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read launches: %w", err)
	}
	return entries, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
