package model

import "time"

// Attendee represents a join row between a user and an event. The
// database enforces at most one row per (user, event) pair.
type Attendee struct {
	ID        int64
	UserID    int64
	EventID   int64
	CreatedAt time.Time
}

// AttendeeResponse represents an attendee relation in API responses.
type AttendeeResponse struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"userId"`
	EventID int64 `json:"eventId"`
}

// ToResponse converts a database attendee to its API shape.
func (a Attendee) ToResponse() AttendeeResponse {
	return AttendeeResponse{
		ID:      a.ID,
		UserID:  a.UserID,
		EventID: a.EventID,
	}
}
