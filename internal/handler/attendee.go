package handler

import (
	"errors"
	"net/http"

	"github.com/gatherly/gatherly-go/internal/service"
)

// AttendeeHandler handles HTTP requests for the user-event join relation.
type AttendeeHandler struct {
	service *service.AttendeeService
}

// NewAttendeeHandler creates a new AttendeeHandler.
func NewAttendeeHandler(svc *service.AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{service: svc}
}

// HandleJoin handles POST /api/v1/events/{id}/attendees/{userId} requests.
func (h *AttendeeHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	attendee, err := h.service.Join(r.Context(), eventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound), errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrAlreadyAttending):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, attendee)
}

// HandleLeave handles DELETE /api/v1/events/{id}/attendees/{userId} requests.
func (h *AttendeeHandler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	err := h.service.Leave(r.Context(), eventID, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotAttending) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListForEvent handles GET /api/v1/events/{id}/attendees requests.
func (h *AttendeeHandler) HandleListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	users, err := h.service.ListForEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// HandleEventsForUser handles GET /api/v1/attendees/{userId}/events requests.
func (h *AttendeeHandler) HandleEventsForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	events, err := h.service.ListEventsForUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, events)
}
