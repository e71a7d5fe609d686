package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gatherly/gatherly-go/internal/model"
)

var ErrEventNotFound = errors.New("event not found")

// EventRepository handles event persistence operations.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and sets the generated ID on the event struct.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (owner_id, name, description, location, date_time)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		event.OwnerID, event.Name, event.Description, event.Location, event.DateTime,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// GetAll retrieves all events, soonest first.
func (r *EventRepository) GetAll(ctx context.Context) ([]model.Event, error) {
	query := `SELECT id, owner_id, name, description, location, date_time, created_at, updated_at
		FROM events ORDER BY date_time`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// GetByID retrieves an event by its ID.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `SELECT id, owner_id, name, description, location, date_time, created_at, updated_at
		FROM events WHERE id = ?`

	event := &model.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.OwnerID, &event.Name, &event.Description,
		&event.Location, &event.DateTime, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// Update rewrites the mutable fields of an existing event.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	query := `UPDATE events SET name = ?, description = ?, location = ?, date_time = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		event.Name, event.Description, event.Location, event.DateTime, event.ID,
	)
	if err != nil {
		return err
	}

	// RowsAffected is 0 both for a missing row and for a no-op update,
	// so existence is checked by the caller before updating.
	_, err = result.RowsAffected()
	return err
}

// Delete removes an event by its ID.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// scanEvents reads all rows from an event query result set.
func scanEvents(rows *sql.Rows) ([]model.Event, error) {
	var events []model.Event
	for rows.Next() {
		var event model.Event
		if err := rows.Scan(
			&event.ID, &event.OwnerID, &event.Name, &event.Description,
			&event.Location, &event.DateTime, &event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
