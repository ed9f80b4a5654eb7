// Package sqlite implements the save-place store: the last point position
// for every file-backed buffer, keyed by file path, so reopening a file
// restores the cursor.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// schema is applied at open. A single table needs no versioned migrations.
const schema = `
CREATE TABLE IF NOT EXISTS places (
	path TEXT PRIMARY KEY,
	point INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);`

// NewDB opens (creating if necessary) the save-place database at path and
// applies the schema. The parent directory is created with 0700.
func NewDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return db, nil
}
