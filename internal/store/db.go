// Package store persists game snapshots in a SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"polis/internal/engine"
)

// ErrNotFound is returned when no snapshot exists for the requested game.
var ErrNotFound = errors.New("store: game not found")

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id         TEXT PRIMARY KEY,
	state      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// DB wraps the SQLite handle used for snapshot storage.
type DB struct {
	db *sqlx.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// modernc's driver serializes access per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error { return d.db.Close() }

// Save upserts the snapshot of one game.
func (d *DB) Save(snap engine.Snapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO games (id, state, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		snap.ID, string(state), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", snap.ID, err)
	}
	return nil
}

// Load fetches one game's snapshot.
func (d *DB) Load(id string) (engine.Snapshot, error) {
	var state string
	err := d.db.Get(&state, `SELECT state FROM games WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("load game %s: %w", id, err)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal([]byte(state), &snap); err != nil {
		return engine.Snapshot{}, fmt.Errorf("decode game %s: %w", id, err)
	}
	return snap, nil
}

// LoadAll fetches every stored snapshot.
func (d *DB) LoadAll() ([]engine.Snapshot, error) {
	var states []string
	if err := d.db.Select(&states, `SELECT state FROM games ORDER BY id`); err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}
	snaps := make([]engine.Snapshot, 0, len(states))
	for _, state := range states {
		var snap engine.Snapshot
		if err := json.Unmarshal([]byte(state), &snap); err != nil {
			return nil, fmt.Errorf("decode stored game: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// Delete removes a stored game. Deleting a missing game is not an error.
func (d *DB) Delete(id string) error {
	if _, err := d.db.Exec(`DELETE FROM games WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return nil
}
