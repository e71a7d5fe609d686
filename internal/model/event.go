package model

import "time"

// Event represents an event row in the database. OwnerID is the user
// who created the event and the only user allowed to change it.
type Event struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Location    string
	DateTime    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventRequest represents the client-supplied fields for creating or
// updating an event. The owner is never taken from the request body;
// it comes from the authenticated token.
type EventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"dateTime"`
}

// EventResponse represents an event in API responses.
type EventResponse struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"dateTime"`
}

// ToResponse converts a database event to its API shape.
func (e Event) ToResponse() EventResponse {
	return EventResponse{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		DateTime:    e.DateTime,
	}
}
