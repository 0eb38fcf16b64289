package storage

import (
	"database/sql"
	"fmt"
)

// PostgresStore persists slots in a single key/value table.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := s.DB.Exec(stmt); err != nil {
		return fmt.Errorf("ensure slots schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(slot string) ([]byte, error) {
	var value string
	err := s.DB.QueryRow("SELECT value FROM slots WHERE key = $1", slot).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *PostgresStore) Save(slot string, data []byte) error {
	_, err := s.DB.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()
	`, slot, string(data))
	return err
}

func (s *PostgresStore) Delete(slot string) error {
	_, err := s.DB.Exec("DELETE FROM slots WHERE key = $1", slot)
	return err
}
