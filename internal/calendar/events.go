package calendar

import (
	"time"

	"github.com/greedyapp/greedy/internal/domain"
)

// Event is one assignment's presence on one calendar day.
type Event struct {
	AssignmentID string               `json:"assignmentId"`
	Name         string               `json:"name"`
	ClassSlug    string               `json:"className"`
	Priority     domain.PriorityLevel `json:"priority"`
	IsStart      bool                 `json:"isStart"`
	IsEnd        bool                 `json:"isEnd"`
}

// Expand projects assignments onto a date-keyed event map. Every day from
// the start date through the due date carries an event, with the boundary
// days marked. Assignments without a parseable start date are skipped; a
// missing or earlier due date collapses the span to the start day.
func Expand(assignments []domain.Assignment) map[string][]Event {
	events := make(map[string][]Event)

	for _, a := range assignments {
		start, ok := domain.ParseDate(a.StartDate)
		if !ok {
			continue
		}
		end, ok := domain.ParseDate(a.EndDate)
		if !ok || end.Before(start) {
			end = start
		}

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			key := day.Format(domain.DateLayout)
			events[key] = append(events[key], Event{
				AssignmentID: a.ID,
				Name:         a.Name,
				ClassSlug:    a.ClassSlug,
				Priority:     a.Priority,
				IsStart:      day.Equal(start),
				IsEnd:        day.Equal(end),
			})
		}
	}

	return events
}

// Between filters an expanded event map to days within [from, to] inclusive.
func Between(events map[string][]Event, from, to time.Time) map[string][]Event {
	out := make(map[string][]Event)
	for key, dayEvents := range events {
		day, ok := domain.ParseDate(key)
		if !ok {
			continue
		}
		if day.Before(from) || day.After(to) {
			continue
		}
		out[key] = dayEvents
	}
	return out
}
