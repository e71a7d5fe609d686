package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gatherly/gatherly-go/internal/model"
)

var (
	ErrAttendeeNotFound  = errors.New("attendee not found")
	ErrDuplicateAttendee = errors.New("user already attends this event")
)

// AttendeeRepository handles attendee persistence operations.
type AttendeeRepository struct {
	db *sql.DB
}

// NewAttendeeRepository creates a new AttendeeRepository.
func NewAttendeeRepository(db *sql.DB) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

// Create inserts a new attendee row and sets the generated ID. The
// unique key on (user_id, event_id) rejects a second join of the same
// event by the same user.
func (r *AttendeeRepository) Create(ctx context.Context, attendee *model.Attendee) error {
	query := `INSERT INTO attendees (user_id, event_id) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, attendee.UserID, attendee.EventID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateAttendee
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	attendee.ID = id
	return nil
}

// GetByUserAndEvent retrieves the attendee row for a (user, event) pair.
func (r *AttendeeRepository) GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*model.Attendee, error) {
	query := `SELECT id, user_id, event_id, created_at FROM attendees
		WHERE user_id = ? AND event_id = ?`

	attendee := &model.Attendee{}
	err := r.db.QueryRowContext(ctx, query, userID, eventID).Scan(
		&attendee.ID, &attendee.UserID, &attendee.EventID, &attendee.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAttendeeNotFound
		}
		return nil, err
	}

	return attendee, nil
}

// ListUsersByEvent retrieves the users attending an event, in join order.
func (r *AttendeeRepository) ListUsersByEvent(ctx context.Context, eventID int64) ([]model.User, error) {
	query := `SELECT u.id, u.name, u.email, u.password_hash, u.created_at, u.updated_at
		FROM users u
		JOIN attendees a ON u.id = a.user_id
		WHERE a.event_id = ?
		ORDER BY a.id`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// ListEventsByUser retrieves the events a user has joined, soonest first.
func (r *AttendeeRepository) ListEventsByUser(ctx context.Context, userID int64) ([]model.Event, error) {
	query := `SELECT e.id, e.owner_id, e.name, e.description, e.location, e.date_time, e.created_at, e.updated_at
		FROM events e
		JOIN attendees a ON e.id = a.event_id
		WHERE a.user_id = ?
		ORDER BY e.date_time`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Delete removes the attendee row for a (user, event) pair.
func (r *AttendeeRepository) Delete(ctx context.Context, userID, eventID int64) error {
	query := `DELETE FROM attendees WHERE user_id = ? AND event_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, eventID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAttendeeNotFound
	}
	return nil
}
