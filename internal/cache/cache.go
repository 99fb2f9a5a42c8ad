// Package cache persists per-file diagnostic results between runs so an
// unchanged source file is never re-analyzed.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/funvibe/minijava/internal/diagnostics"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	path        TEXT NOT NULL,
	content_sum TEXT NOT NULL,
	diags       TEXT NOT NULL,
	created_at  INTEGER NOT NULL,
	PRIMARY KEY (path, content_sum)
);
`

// Cache is a content-addressed diagnostics store. Entries are keyed by
// file path plus a digest of the file's contents, so any edit
// invalidates the entry automatically.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database under dir.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "diagnostics.db"))
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached diagnostics for path with exactly this source
// text. The second result is false on a miss or an unreadable entry.
func (c *Cache) Get(path, source string) ([]*diagnostics.DiagnosticError, bool) {
	var raw string
	row := c.db.QueryRow(
		`SELECT diags FROM results WHERE path = ? AND content_sum = ?`,
		path, contentSum(source))
	if err := row.Scan(&raw); err != nil {
		return nil, false
	}

	var diags []*diagnostics.DiagnosticError
	if err := json.Unmarshal([]byte(raw), &diags); err != nil {
		return nil, false
	}
	return diags, true
}

// Put stores the diagnostics for path with this source text, replacing
// any stale entry for the same path.
func (c *Cache) Put(path, source string, diags []*diagnostics.DiagnosticError) error {
	if diags == nil {
		diags = []*diagnostics.DiagnosticError{}
	}
	raw, err := json.Marshal(diags)
	if err != nil {
		return fmt.Errorf("encode diagnostics: %w", err)
	}

	// one entry per path: an edit supersedes the previous contents
	if _, err := c.db.Exec(`DELETE FROM results WHERE path = ?`, path); err != nil {
		return fmt.Errorf("evict stale entry: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT INTO results (path, content_sum, diags, created_at) VALUES (?, ?, ?, ?)`,
		path, contentSum(source), string(raw), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("store entry: %w", err)
	}
	return nil
}

func contentSum(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
