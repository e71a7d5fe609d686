package client

import (
	"testing"
	"time"

	"github.com/gatherly/gatherly-go/internal/model"
)

func sampleEvents() []model.EventResponse {
	return []model.EventResponse{
		{ID: 1, Name: "Jazz Night", Description: "Live quartet", Location: "Blue Note"},
		{ID: 2, Name: "Tech Meetup", Description: "Talks on Go", Location: "Hub 42"},
		{ID: 3, Name: "Jazz Brunch", Description: "Sunday session", Location: "Riverside"},
	}
}

func TestFilterEvents_CaseInsensitiveName(t *testing.T) {
	got := FilterEvents(sampleEvents(), "jazz")

	if len(got) != 2 {
		t.Fatalf("FilterEvents() returned %d events, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("FilterEvents() order = [%d %d], want [1 3]", got[0].ID, got[1].ID)
	}
}

func TestFilterEvents_MatchesDescriptionAndLocation(t *testing.T) {
	byDescription := FilterEvents(sampleEvents(), "talks on go")
	if len(byDescription) != 1 || byDescription[0].ID != 2 {
		t.Errorf("description match = %+v, want event 2", byDescription)
	}

	byLocation := FilterEvents(sampleEvents(), "riverside")
	if len(byLocation) != 1 || byLocation[0].ID != 3 {
		t.Errorf("location match = %+v, want event 3", byLocation)
	}
}

func TestFilterEvents_EmptyQueryReturnsAll(t *testing.T) {
	events := sampleEvents()

	got := FilterEvents(events, "")
	if len(got) != len(events) {
		t.Errorf("FilterEvents(\"\") returned %d events, want %d", len(got), len(events))
	}

	got = FilterEvents(events, "   ")
	if len(got) != len(events) {
		t.Errorf("FilterEvents(whitespace) returned %d events, want %d", len(got), len(events))
	}
}

func TestFilterEvents_NoMatch(t *testing.T) {
	if got := FilterEvents(sampleEvents(), "opera"); len(got) != 0 {
		t.Errorf("FilterEvents() returned %d events, want 0", len(got))
	}
}

func TestPartitionEvents(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	events := []model.EventResponse{
		{ID: 1, Name: "yesterday", DateTime: now.Add(-24 * time.Hour)},
		{ID: 2, Name: "tomorrow", DateTime: now.Add(24 * time.Hour)},
		{ID: 3, Name: "exactly now", DateTime: now},
		{ID: 4, Name: "last week", DateTime: now.Add(-7 * 24 * time.Hour)},
	}

	upcoming, past := PartitionEvents(events, now)

	if len(upcoming) != 2 || upcoming[0].ID != 2 || upcoming[1].ID != 3 {
		t.Errorf("upcoming = %+v, want events 2 and 3 in order", upcoming)
	}
	if len(past) != 2 || past[0].ID != 1 || past[1].ID != 4 {
		t.Errorf("past = %+v, want events 1 and 4 in order", past)
	}

	// Every event lands in exactly one partition.
	if len(upcoming)+len(past) != len(events) {
		t.Errorf("partition sizes %d + %d != %d", len(upcoming), len(past), len(events))
	}
}

func TestPartitionEvents_Empty(t *testing.T) {
	upcoming, past := PartitionEvents(nil, time.Now())
	if len(upcoming) != 0 || len(past) != 0 {
		t.Errorf("PartitionEvents(nil) = %d upcoming, %d past; want 0, 0", len(upcoming), len(past))
	}
}
