package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PlaceRepository persists point positions per file path.
type PlaceRepository struct {
	db *sql.DB
}

// NewPlaceRepository creates a repository over an open database.
func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// Save upserts the point position for a path.
func (r *PlaceRepository) Save(path string, point int) error {
	_, err := r.db.Exec(
		`INSERT INTO places (path, point, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET point = excluded.point, updated_at = excluded.updated_at`,
		path, point, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("saving place for %s: %w", path, err)
	}
	return nil
}

// Find returns the stored point for a path. The second return value reports
// whether a place was stored.
func (r *PlaceRepository) Find(path string) (int, bool, error) {
	var point int
	err := r.db.QueryRow(`SELECT point FROM places WHERE path = ?`, path).Scan(&point)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("finding place for %s: %w", path, err)
	}
	return point, true, nil
}

// Forget removes the stored place for a path.
func (r *PlaceRepository) Forget(path string) error {
	if _, err := r.db.Exec(`DELETE FROM places WHERE path = ?`, path); err != nil {
		return fmt.Errorf("forgetting place for %s: %w", path, err)
	}
	return nil
}
