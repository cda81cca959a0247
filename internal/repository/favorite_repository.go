// Package repository: favorites.  A Favorite remembers an activity name the
// user has used before so the create form can offer it again.  The table is
// a durable set keyed by the activity text itself.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Favorite is one remembered activity name.
type Favorite struct {
	Activity  string `json:"activity"`   // primary key, trimmed, never blank
	CreatedAt string `json:"created_at"` // first-insert time; untouched by re-adds
}

// FavoriteRepo manages the favorites set.
type FavoriteRepo struct {
	db *sql.DB
}

// NewFavoriteRepo constructs a FavoriteRepo with the given DB handle.
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// Add inserts the activity if it is not already present.  The input is
// trimmed first; a blank result is silently ignored rather than treated as
// an error.  Re-adding an existing activity is a no-op and does not touch
// its ordering.  The check and insert run in one transaction so the insert
// cannot race a concurrent add into a duplicate-key failure.
func (r *FavoriteRepo) Add(ctx context.Context, activity, createdAt string) (err error) {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	// Commit on success so the row is durable before Add returns; the commit
	// error, if any, becomes the call's result.
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("%w: %v", ErrPersistence, cerr)
		}
	}()
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM favorites WHERE activity = ?`, activity).Scan(&one)
	if err == nil {
		return nil // already present, insert-if-absent is a no-op
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO favorites (activity, created_at) VALUES (?, ?)`, activity, createdAt,
	); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Remove deletes the activity by exact match.  Removing an absent activity
// is a no-op.
func (r *FavoriteRepo) Remove(ctx context.Context, activity string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE activity = ?`, activity); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ListAll returns the favorites ordered by insertion time descending.
func (r *FavoriteRepo) ListAll(ctx context.Context) ([]Favorite, error) {
	const q = `SELECT activity, created_at FROM favorites ORDER BY created_at DESC, activity ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []Favorite{}
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.Activity, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
