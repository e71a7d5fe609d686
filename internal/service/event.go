package service

import (
	"context"
	"errors"

	"github.com/gatherly/gatherly-go/internal/model"
	"github.com/gatherly/gatherly-go/internal/repository"
)

var (
	ErrEventNameRequired     = errors.New("event name is required")
	ErrEventLocationRequired = errors.New("event location is required")
	ErrEventDateTimeRequired = errors.New("event date and time are required")
	ErrEventNotFound         = errors.New("event not found")
	ErrNotEventOwner         = errors.New("only the event owner may modify it")
)

// EventService handles event business logic. Update and Delete enforce
// that only the creator of an event may change it.
type EventService struct {
	repo *repository.EventRepository
}

// NewEventService creates a new EventService.
func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// Create validates and stores a new event owned by ownerID.
func (s *EventService) Create(ctx context.Context, ownerID int64, req model.EventRequest) (model.EventResponse, error) {
	if err := validateEventRequest(req); err != nil {
		return model.EventResponse{}, err
	}

	event := &model.Event{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		DateTime:    req.DateTime,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return model.EventResponse{}, err
	}

	return event.ToResponse(), nil
}

// List returns all events.
func (s *EventService) List(ctx context.Context) ([]model.EventResponse, error) {
	events, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return eventsToResponse(events), nil
}

// Get returns a single event by ID.
func (s *EventService) Get(ctx context.Context, id int64) (model.EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.EventResponse{}, ErrEventNotFound
		}
		return model.EventResponse{}, err
	}
	return event.ToResponse(), nil
}

// Update replaces the mutable fields of an event owned by userID.
func (s *EventService) Update(ctx context.Context, userID, eventID int64, req model.EventRequest) (model.EventResponse, error) {
	if err := validateEventRequest(req); err != nil {
		return model.EventResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.EventResponse{}, ErrEventNotFound
		}
		return model.EventResponse{}, err
	}
	if existing.OwnerID != userID {
		return model.EventResponse{}, ErrNotEventOwner
	}

	event := &model.Event{
		ID:          eventID,
		OwnerID:     existing.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		DateTime:    req.DateTime,
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return model.EventResponse{}, err
	}

	return event.ToResponse(), nil
}

// Delete removes an event owned by userID.
func (s *EventService) Delete(ctx context.Context, userID, eventID int64) error {
	existing, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	if existing.OwnerID != userID {
		return ErrNotEventOwner
	}

	err = s.repo.Delete(ctx, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return ErrEventNotFound
	}
	return err
}

func validateEventRequest(req model.EventRequest) error {
	if req.Name == "" {
		return ErrEventNameRequired
	}
	if req.Location == "" {
		return ErrEventLocationRequired
	}
	if req.DateTime.IsZero() {
		return ErrEventDateTimeRequired
	}
	return nil
}

func eventsToResponse(events []model.Event) []model.EventResponse {
	resp := make([]model.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, e.ToResponse())
	}
	return resp
}
