// Package store is the local persistence layer: a small sqlite database in
// the user's data directory holding JSON snapshots under fixed keys, the same
// shape the web storefront kept in localStorage.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/alseiny20/bkbweb-go/internal/cart"
)

const (
	keyCart       = "cart"
	keyAdminAuth  = "admin_authenticated"
	keyAdminToken = "admin_token"
)

type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open creates or opens the snapshot database under dir.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dir, "bkbweb.db")
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := s.db.Exec(schema)
	return err
}

// LoadCart reads the persisted cart snapshot. A missing key or a value that
// no longer decodes yields an empty cart, never an error the session has to
// die on; only real database failures propagate.
func (s *Store) LoadCart() ([]cart.LineItem, error) {
	value, ok, err := s.get(keyCart)
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var items []cart.LineItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		s.log.Warn("discarding corrupt cart snapshot", zap.Error(err))
		return nil, nil
	}
	return items, nil
}

// SaveCart overwrites the cart snapshot with the full line-item slice.
func (s *Store) SaveCart(items []cart.LineItem) error {
	if items == nil {
		items = []cart.LineItem{}
	}
	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.put(keyCart, string(value)); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// AdminAuthenticated reports whether an admin session flag was persisted.
// Unreadable values count as logged out.
func (s *Store) AdminAuthenticated() bool {
	value, ok, err := s.get(keyAdminAuth)
	if err != nil {
		s.log.Warn("admin flag unreadable", zap.Error(err))
		return false
	}
	return ok && value == "true"
}

func (s *Store) SetAdminAuthenticated(authenticated bool, token string) error {
	value := "false"
	if !authenticated {
		token = ""
	} else {
		value = "true"
	}
	if err := s.put(keyAdminAuth, value); err != nil {
		return fmt.Errorf("save admin flag: %w", err)
	}
	if err := s.put(keyAdminToken, token); err != nil {
		return fmt.Errorf("save admin token: %w", err)
	}
	return nil
}

// AdminToken returns the backend token from the last admin login, if any.
func (s *Store) AdminToken() string {
	value, ok, err := s.get(keyAdminToken)
	if err != nil || !ok {
		return ""
	}
	return value
}

func (s *Store) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}
