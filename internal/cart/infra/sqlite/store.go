// Package sqlite stores the cart snapshot in an embedded SQLite database,
// one row per logical slot.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Manuelsilva1/Library/internal/cart/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS cart_snapshots (
	slot    TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);`

type Store struct {
	db   *sql.DB
	slot string
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return db, nil
}

func NewStore(db *sql.DB, slot string) *Store {
	return &Store{db: db, slot: slot}
}

func (s *Store) Load() ([]domain.LineItem, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM cart_snapshots WHERE slot = ?`, s.slot,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot %s: %w", s.slot, err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.slot, err)
	}

	return items, nil
}

func (s *Store) Save(items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO cart_snapshots (slot, payload) VALUES (?, ?)
		 ON CONFLICT (slot) DO UPDATE SET payload = excluded.payload`,
		s.slot, string(raw),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", s.slot, err)
	}

	return nil
}

func (s *Store) Discard() error {
	if _, err := s.db.Exec(`DELETE FROM cart_snapshots WHERE slot = ?`, s.slot); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", s.slot, err)
	}
	return nil
}
