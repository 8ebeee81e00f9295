package linkcheck

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/reprogrammability/tutorsite/internal/db"
)

// Cache stores link results in SQLite so that recently verified URLs are
// not requested again.
type Cache struct {
	db *db.DB
}

// NewCache wraps an open database.
func NewCache(d *db.DB) *Cache {
	return &Cache{db: d}
}

// Fresh returns the stored result for url when it was ok and checked within
// ttl of now.
func (c *Cache) Fresh(url string, ttl time.Duration, now time.Time) (Result, bool, error) {
	if ttl <= 0 {
		return Result{}, false, nil
	}
	var (
		r         Result
		status    string
		checkedAt time.Time
	)
	err := c.db.QueryRow(
		`SELECT url, status, code, detail, checked_at FROM link_checks WHERE url = ?`, url,
	).Scan(&r.URL, &status, &r.Code, &r.Detail, &checkedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, fmt.Errorf("reading cached result for %s: %w", url, err)
	}
	r.Status = Status(status)
	r.CheckedAt = checkedAt
	if r.Status != StatusOK || now.Sub(checkedAt) > ttl {
		return Result{}, false, nil
	}
	r.Cached = true
	return r, true, nil
}

// Put records a result, replacing any earlier one for the same URL.
func (c *Cache) Put(r Result) error {
	_, err := c.db.Exec(
		`INSERT INTO link_checks (url, status, code, detail, checked_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET status = excluded.status, code = excluded.code,
		 detail = excluded.detail, checked_at = excluded.checked_at`,
		r.URL, string(r.Status), r.Code, r.Detail, r.CheckedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("caching result for %s: %w", r.URL, err)
	}
	return nil
}
