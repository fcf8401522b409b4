// Package store persists the achievement unlock set in a small sqlite
// key/value table. The payload is a JSON array of achievement ids under one
// well-known key; corrupt payloads read as the empty set.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

const achievementsKey = "bz_sim_achievements"

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path. ":memory:" gives
// a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	log.Printf("store: opened %s", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the persisted achievement ids. A missing row or a corrupt
// payload reads as no achievements; only real database errors propagate.
func (s *Store) Load() ([]string, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM kv WHERE key = ?`, achievementsKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(payload), &ids); err != nil {
		log.Printf("store: corrupt achievements payload, starting empty: %v", err)
		return nil, nil
	}
	return ids, nil
}

// Save rewrites the full achievement set. Duplicate ids are dropped so the
// stored set stays idempotent no matter what the caller passes.
func (s *Store) Save(ids []string) error {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	payload, err := json.Marshal(unique)
	if err != nil {
		return fmt.Errorf("encode achievements: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		achievementsKey, string(payload))
	if err != nil {
		return fmt.Errorf("save achievements: %w", err)
	}
	return nil
}
