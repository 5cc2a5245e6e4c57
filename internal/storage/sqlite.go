// Package storage provides the SQLite level-pack library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only level definitions are stored; play state is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrPackNotFound is returned when a named pack is not in the library.
var ErrPackNotFound = errors.New("storage: pack not found")

// Store manages the SQLite database connection for the level library.
type Store struct {
	db *sql.DB
}

// PackInfo summarises one stored level pack.
type PackInfo struct {
	ID         int64
	Name       string
	SourceName string // file the pack was imported from
	LevelCount int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS packs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			source_name TEXT NOT NULL DEFAULT '',
			body BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pack_levels (
			pack_id INTEGER NOT NULL REFERENCES packs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (pack_id, position)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePack stores a pack body (text level grammar) under name, replacing any
// pack with the same name. levelNames lists the level names in order.
func (s *Store) SavePack(name, sourceName string, body []byte, levelNames []string) error {
	if name == "" {
		return errors.New("storage: pack name is empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(
		`DELETE FROM pack_levels WHERE pack_id IN (SELECT id FROM packs WHERE name = ?)`, name,
	); err != nil {
		return fmt.Errorf("storage: cannot replace pack levels: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM packs WHERE name = ?`, name); err != nil {
		return fmt.Errorf("storage: cannot replace pack: %w", err)
	}

	res, err := tx.Exec(
		"INSERT INTO packs (name, source_name, body) VALUES (?, ?, ?)",
		name, sourceName, body,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save pack: %w", err)
	}
	packID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for i, levelName := range levelNames {
		if _, err := tx.Exec(
			"INSERT INTO pack_levels (pack_id, position, name) VALUES (?, ?, ?)",
			packID, i+1, levelName,
		); err != nil {
			return fmt.Errorf("storage: cannot save level %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit pack: %w", err)
	}
	return nil
}

// PackSource returns the stored body of the named pack.
func (s *Store) PackSource(name string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow("SELECT body FROM packs WHERE name = ?", name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPackNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pack: %w", err)
	}
	return body, nil
}

// PackLevelNames returns the level names of the named pack in order.
func (s *Store) PackLevelNames(name string) ([]string, error) {
	if _, err := s.PackSource(name); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT l.name
		 FROM pack_levels l JOIN packs p ON p.id = l.pack_id
		 WHERE p.name = ?
		 ORDER BY l.position`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pack levels: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return names, nil
}

// ListPacks returns every stored pack ordered by name.
func (s *Store) ListPacks() ([]PackInfo, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.name, p.source_name, COUNT(l.position), p.created_at
		 FROM packs p LEFT JOIN pack_levels l ON l.pack_id = p.id
		 GROUP BY p.id
		 ORDER BY p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []PackInfo
	for rows.Next() {
		var p PackInfo
		var createdAt any
		if err := rows.Scan(&p.ID, &p.Name, &p.SourceName, &p.LevelCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		packs = append(packs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return packs, nil
}

// DeletePack removes the named pack and its level index.
func (s *Store) DeletePack(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(
		`DELETE FROM pack_levels WHERE pack_id IN (SELECT id FROM packs WHERE name = ?)`, name,
	); err != nil {
		return fmt.Errorf("storage: cannot delete pack levels: %w", err)
	}
	res, err := tx.Exec("DELETE FROM packs WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete pack: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrPackNotFound, name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
