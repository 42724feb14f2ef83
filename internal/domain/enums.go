package domain

import "strings"

// PriorityLevel is the instructor-facing low/medium/high tag stored on an
// assignment. It is derived rather than user-set, though edits may overwrite it.
type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

// NormalizePriority maps a loosely-typed priority string onto a valid
// PriorityLevel, defaulting to medium. Substring matching tolerates model
// output such as "High priority" or "LOW".
func NormalizePriority(s string) PriorityLevel {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(lower, "low"):
		return PriorityLow
	case strings.Contains(lower, "high"):
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// PriorityCategory is the urgency bucket computed from due-date proximity.
type PriorityCategory string

const (
	CategoryOverdue PriorityCategory = "Overdue"
	CategoryUrgent  PriorityCategory = "Urgent"
	CategoryHigh    PriorityCategory = "High"
	CategoryMedium  PriorityCategory = "Medium"
	CategoryLow     PriorityCategory = "Low"
)

// ClassColors is the set of display colors a class card may be tagged with.
var ClassColors = []string{
	"forest", "blue", "green", "purple", "amber",
	"teal", "pink", "indigo", "orange", "emerald",
}
