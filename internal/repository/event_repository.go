// Package repository contains data access logic for the event domain.  This
// file defines the Event model and its repository.  An Event is a space
// someone opened for a bounded time window; rows are immutable after insert
// and only ever removed by a hard delete.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"fmt"          // fmt wraps driver errors with the persistence sentinel
)

// Event represents one open space.  Timestamps are civil timestamp strings
// ("2006-01-02 15:04:05", KST); keeping the stored string form here means a
// corrupt row can still be loaded and is dealt with at display time instead
// of failing the whole listing.
type Event struct {
	ID              string   `json:"id"`                     // uuid hex, immutable
	Title           string   `json:"title"`                  // display title, truncated at creation
	Photo           string   `json:"photo,omitempty"`        // opaque encoded image blob, empty = no photo
	StartAt         string   `json:"start_at"`               // window start, civil timestamp
	EndAt           string   `json:"end_at"`                 // window end, civil timestamp
	Address         string   `json:"address"`                // selected place address
	AddressDetail   string   `json:"address_detail"`         // free-form detail, may be empty
	Lat             float64  `json:"lat"`                    // latitude of the place
	Lng             float64  `json:"lng"`                    // longitude of the place
	CapacityEnabled bool     `json:"capacity_enabled"`       // whether a head-count limit applies
	CapacityMax     *int     `json:"capacity_max,omitempty"` // limit in [1,10] when enabled, nil otherwise
	Hidden          bool     `json:"-"`                      // soft-delete flag; no exposed write path sets it
	CreatedAt       string   `json:"created_at"`             // server-assigned insert time, sole ordering key
}

// EventRepo manages persistence for events.  Each mutating call commits
// before returning; there is no write-behind.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `id, title, photo, start_at, end_at, address, address_detail,
	lat, lng, capacity_enabled, capacity_max, hidden, created_at`

// Create inserts a new event.  The caller is responsible for validation
// (required fields, end after start, clamped capacity) and for assigning ID
// and CreatedAt; the store trusts well-formed input.  A driver error is
// wrapped in ErrPersistence so the handler can report it without a phantom
// success.
func (r *EventRepo) Create(ctx context.Context, e *Event) error {
	const q = `INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var capMax sql.NullInt64
	if e.CapacityEnabled && e.CapacityMax != nil {
		capMax = sql.NullInt64{Int64: int64(*e.CapacityMax), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, q,
		e.ID, e.Title, e.Photo, e.StartAt, e.EndAt, e.Address, e.AddressDetail,
		e.Lat, e.Lng, boolToInt(e.CapacityEnabled), capMax, boolToInt(e.Hidden), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ListAll returns every stored event ordered by creation time descending.
// An empty slice is a valid result, not an error.
func (r *EventRepo) ListAll(ctx context.Context) ([]Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []Event{}
	for rows.Next() {
		var (
			e       Event
			photo   sql.NullString
			capMax  sql.NullInt64
			enabled int
			hidden  int
		)
		if err := rows.Scan(
			&e.ID, &e.Title, &photo, &e.StartAt, &e.EndAt, &e.Address, &e.AddressDetail,
			&e.Lat, &e.Lng, &enabled, &capMax, &hidden, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Photo = photo.String
		e.CapacityEnabled = enabled != 0
		e.Hidden = hidden != 0
		if capMax.Valid {
			n := int(capMax.Int64)
			e.CapacityMax = &n
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes the event with the given id.  Deleting an id that does
// not exist is a no-op, not an error; the operation is idempotent.
func (r *EventRepo) DeleteByID(ctx context.Context, id string) error {
	const q = `DELETE FROM events WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// boolToInt maps a Go bool onto the SMALLINT 0/1 column form shared by the
// MySQL and SQLite schemas.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
