package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gatherly/gatherly-go/internal/model"
)

// ListEvents fetches all events. Filtering happens client-side; see
// FilterEvents.
func (c *Client) ListEvents(ctx context.Context) ([]model.EventResponse, error) {
	var events []model.EventResponse
	err := c.do(ctx, http.MethodGet, "/events", nil, &events)
	return events, err
}

// GetEvent fetches a single event by ID.
func (c *Client) GetEvent(ctx context.Context, id int64) (model.EventResponse, error) {
	var event model.EventResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, &event)
	return event, err
}

// CreateEvent creates a new event owned by the authenticated user.
func (c *Client) CreateEvent(ctx context.Context, req model.EventRequest) (model.EventResponse, error) {
	var event model.EventResponse
	err := c.do(ctx, http.MethodPost, "/events", req, &event)
	return event, err
}

// UpdateEvent replaces the mutable fields of an event the
// authenticated user owns.
func (c *Client) UpdateEvent(ctx context.Context, id int64, req model.EventRequest) (model.EventResponse, error) {
	var event model.EventResponse
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), req, &event)
	return event, err
}

// DeleteEvent deletes an event the authenticated user owns.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil)
}

// ListAttendees fetches the users attending an event.
func (c *Client) ListAttendees(ctx context.Context, eventID int64) ([]model.UserResponse, error) {
	var users []model.UserResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d/attendees", eventID), nil, &users)
	return users, err
}

// JoinEvent adds a user to an event's attendees. Duplicate-join
// prevention is the server's job; callers should disable the join
// control while a request is in flight.
func (c *Client) JoinEvent(ctx context.Context, eventID, userID int64) (model.AttendeeResponse, error) {
	var attendee model.AttendeeResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/attendees/%d", eventID, userID), nil, &attendee)
	return attendee, err
}

// LeaveEvent removes a user from an event's attendees.
func (c *Client) LeaveEvent(ctx context.Context, eventID, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d/attendees/%d", eventID, userID), nil, nil)
}

// ListUserEvents fetches the events a user has joined. Callers split
// the result into upcoming and past with PartitionEvents.
func (c *Client) ListUserEvents(ctx context.Context, userID int64) ([]model.EventResponse, error) {
	var events []model.EventResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/attendees/%d/events", userID), nil, &events)
	return events, err
}
