package service

import (
	"context"
	"errors"

	"github.com/gatherly/gatherly-go/internal/model"
	"github.com/gatherly/gatherly-go/internal/repository"
)

var (
	ErrAlreadyAttending = errors.New("user is already an attendee of this event")
	ErrNotAttending     = errors.New("user is not an attendee of this event")
	ErrUserNotFound     = errors.New("user not found")
)

// AttendeeService handles the join relation between users and events.
type AttendeeService struct {
	attendees *repository.AttendeeRepository
	events    *repository.EventRepository
	users     *repository.UserRepository
}

// NewAttendeeService creates a new AttendeeService.
func NewAttendeeService(attendees *repository.AttendeeRepository, events *repository.EventRepository, users *repository.UserRepository) *AttendeeService {
	return &AttendeeService{
		attendees: attendees,
		events:    events,
		users:     users,
	}
}

// Join records userID as an attendee of eventID. Both the event and
// the user must exist; joining twice returns ErrAlreadyAttending.
func (s *AttendeeService) Join(ctx context.Context, eventID, userID int64) (model.AttendeeResponse, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.AttendeeResponse{}, ErrEventNotFound
		}
		return model.AttendeeResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AttendeeResponse{}, ErrUserNotFound
		}
		return model.AttendeeResponse{}, err
	}

	attendee := &model.Attendee{
		UserID:  userID,
		EventID: eventID,
	}

	if err := s.attendees.Create(ctx, attendee); err != nil {
		if errors.Is(err, repository.ErrDuplicateAttendee) {
			return model.AttendeeResponse{}, ErrAlreadyAttending
		}
		return model.AttendeeResponse{}, err
	}

	return attendee.ToResponse(), nil
}

// Leave removes userID from the attendees of eventID.
func (s *AttendeeService) Leave(ctx context.Context, eventID, userID int64) error {
	err := s.attendees.Delete(ctx, userID, eventID)
	if errors.Is(err, repository.ErrAttendeeNotFound) {
		return ErrNotAttending
	}
	return err
}

// ListForEvent returns the users attending an event, for display.
func (s *AttendeeService) ListForEvent(ctx context.Context, eventID int64) ([]model.UserResponse, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	users, err := s.attendees.ListUsersByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	resp := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, model.UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		})
	}
	return resp, nil
}

// ListEventsForUser returns the events a user has joined.
func (s *AttendeeService) ListEventsForUser(ctx context.Context, userID int64) ([]model.EventResponse, error) {
	events, err := s.attendees.ListEventsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return eventsToResponse(events), nil
}
