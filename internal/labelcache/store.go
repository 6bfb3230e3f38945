package labelcache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages generation state backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Entry records one key's last successful generation.
type Entry struct {
	KeyName     string
	InputHash   string
	OutputPath  string
	GeneratedAt time.Time
}

// Open initializes or connects to the cache database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("cache path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the entry for keyName, or nil when the key has not
// been generated before.
func (s *Store) Lookup(ctx context.Context, keyName string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT key_name, input_hash, output_path, generated_at FROM labels WHERE key_name = ?",
		keyName,
	)
	var entry Entry
	var generatedAt string
	if err := row.Scan(&entry.KeyName, &entry.InputHash, &entry.OutputPath, &generatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup %q: %w", keyName, err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse generated_at for %q: %w", keyName, err)
	}
	entry.GeneratedAt = parsed
	return &entry, nil
}

// Record upserts the entry for entry.KeyName.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.KeyName == "" {
		return errors.New("entry requires a key name")
	}
	generatedAt := entry.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO labels (key_name, input_hash, output_path, generated_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(key_name) DO UPDATE SET
           input_hash = excluded.input_hash,
           output_path = excluded.output_path,
           generated_at = excluded.generated_at`,
		entry.KeyName,
		entry.InputHash,
		entry.OutputPath,
		generatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record %q: %w", entry.KeyName, err)
	}
	return nil
}

// Count returns the number of cached entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM labels").Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// Clear removes every cached entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM labels"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Hash returns the hex SHA-256 of a synthesized input document.
func Hash(doc string) string {
	sum := sha256.Sum256([]byte(doc))
	return hex.EncodeToString(sum[:])
}
