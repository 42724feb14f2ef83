package repository

import "time"

// timeLayout is the storage format for created_at/updated_at columns.
// Assignment start/end dates are stored verbatim as the YYYY-MM-DD strings
// the caller supplied and never pass through time.Time.
const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
