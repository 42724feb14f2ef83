package domain

import "time"

// DateLayout is the calendar-date format used across the application.
// Assignment dates carry no time-of-day component.
const DateLayout = "2006-01-02"

// Assignment is one unit of work on a class timeline.
//
// StartDate and EndDate are stored as the exact YYYY-MM-DD strings the user
// (or the model) supplied. They are never reformatted or shifted after
// creation; doing so through a time.Time round trip is where timezone bugs
// creep in. EndDate is the due date. StartDate <= EndDate is expected but not
// enforced here.
type Assignment struct {
	ID          string
	ClassSlug   string // owning class, scopes storage only
	Name        string
	StartDate   string // YYYY-MM-DD, may be empty
	EndDate     string // YYYY-MM-DD, may be empty
	Description string
	Progress    int // 0-100
	Priority    PriorityLevel
	Files       []Attachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Attachment is an opaque file reference carried on an assignment. The core
// never interprets the payload.
type Attachment struct {
	Name string
	Type string
	Size int64
	Data []byte
}

// ParseDate parses a YYYY-MM-DD string. The second return is false for empty
// or unparseable input.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ClampProgress bounds a progress value to the 0-100 range.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ApplyDefaults fills the fields every stored assignment must carry:
// progress is clamped and priority defaults to medium when unset.
func (a *Assignment) ApplyDefaults() {
	a.Progress = ClampProgress(a.Progress)
	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
}
