package store

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// KeyValueStore はアプリ状態スロットの読み書き口です。
// Get は値と「存在したか」を返します。
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// SQLite は app_state テーブルを使った KeyValueStore 実装です。
type SQLite struct {
	db *sqlx.DB
}

func NewSQLite(db *sqlx.DB) *SQLite {
	return &SQLite{db: db}
}

// InitSchema は app_state テーブルを作成します。
func InitSchema(db *sqlx.DB) error {
	const q = `
		CREATE TABLE IF NOT EXISTS app_state (
			key   TEXT NOT NULL PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("failed to create app_state table: %w", err)
	}
	return nil
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.Get(&value, "SELECT value FROM app_state WHERE key = ?", key)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get app_state '%s': %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	const q = `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.Exec(q, key, value); err != nil {
		return fmt.Errorf("failed to set app_state '%s': %w", key, err)
	}
	return nil
}

func (s *SQLite) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM app_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove app_state '%s': %w", key, err)
	}
	return nil
}
