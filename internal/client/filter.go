package client

import (
	"strings"
	"time"

	"github.com/gatherly/gatherly-go/internal/model"
)

// FilterEvents returns the events whose name, description or location
// contains query, case-insensitively, preserving source order. An
// empty query returns all events.
func FilterEvents(events []model.EventResponse, query string) []model.EventResponse {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return events
	}

	var matched []model.EventResponse
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Description), query) ||
			strings.Contains(strings.ToLower(e.Location), query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// PartitionEvents splits events into upcoming and past relative to
// now. An event dated exactly now counts as upcoming; every event
// lands in exactly one partition, order preserved.
func PartitionEvents(events []model.EventResponse, now time.Time) (upcoming, past []model.EventResponse) {
	for _, e := range events {
		if e.DateTime.Before(now) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, past
}
