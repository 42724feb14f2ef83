package domain

import (
	"regexp"
	"strings"
	"time"
)

// Class is a named container of assignments.
type Class struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Schedule    string // free text, e.g. "MWF 10:00-11:30AM"
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var slugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL-safe lookup key for a class name: lower-case, with
// runs of non-alphanumeric characters collapsed to single hyphens. The slug is
// derived exactly once at creation and persisted; lookups never re-derive it.
func Slugify(name string) string {
	s := slugRuns.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
