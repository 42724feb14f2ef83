package priority

import (
	"testing"
	"time"

	"github.com/greedyapp/greedy/internal/domain"
	"github.com/stretchr/testify/assert"
)

func refDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScore_OverdueRegardlessOfProgress(t *testing.T) {
	ref := refDate(2025, 5, 20)

	for _, progress := range []int{0, 50, 100} {
		r := Score(domain.Assignment{
			Name:     "Late essay",
			EndDate:  "2025-05-19",
			Progress: progress,
		}, ref)

		assert.Equal(t, domain.CategoryOverdue, r.Category, "progress=%d", progress)
		assert.True(t, r.Overdue)
		assert.Equal(t, 0, r.DaysUntilDue, "overdue day count is clamped to zero")
	}
}

func TestScore_ProgressLowersScoreNotCategory(t *testing.T) {
	ref := refDate(2025, 5, 20)

	untouched := Score(domain.Assignment{EndDate: "2025-05-19", Progress: 0}, ref)
	finished := Score(domain.Assignment{EndDate: "2025-05-19", Progress: 100}, ref)

	assert.Equal(t, untouched.Category, finished.Category)
	assert.Greater(t, untouched.Score, finished.Score)
	// Only the progress term differs: 0.3 * (1 - progress/100).
	assert.InDelta(t, 0.3, untouched.Score-finished.Score, 1e-9)
}

func TestScore_TimeFactorBuckets(t *testing.T) {
	ref := refDate(2025, 5, 1)

	cases := []struct {
		name       string
		endDate    string
		wantFactor float64
		wantDays   int
	}{
		{"due today", "2025-05-01", 10, 0},
		{"due tomorrow", "2025-05-02", 10, 1},
		{"due in 3 days", "2025-05-04", 8, 3},
		{"due in a week", "2025-05-08", 6, 7},
		{"due far out", "2025-05-30", 4, 29},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Score(domain.Assignment{EndDate: tc.endDate, Progress: 100}, ref)
			assert.Equal(t, tc.wantDays, r.DaysUntilDue)
			// With progress 100 the progress term vanishes.
			assert.InDelta(t, 0.7*tc.wantFactor, r.Score, 1e-9)
		})
	}
}

func TestScore_CategoryBuckets(t *testing.T) {
	ref := refDate(2025, 5, 1)

	cases := []struct {
		endDate string
		want    domain.PriorityCategory
	}{
		{"2025-04-30", domain.CategoryOverdue},
		{"2025-05-02", domain.CategoryUrgent},
		{"2025-05-03", domain.CategoryUrgent},
		{"2025-05-06", domain.CategoryHigh},
		{"2025-05-08", domain.CategoryHigh},
		{"2025-05-11", domain.CategoryMedium},
		{"2025-05-15", domain.CategoryMedium},
		{"2025-05-16", domain.CategoryLow},
	}
	for _, tc := range cases {
		r := Score(domain.Assignment{EndDate: tc.endDate}, ref)
		assert.Equal(t, tc.want, r.Category, "endDate=%s", tc.endDate)
	}
}

func TestScore_MissingOrBadDate(t *testing.T) {
	ref := refDate(2025, 5, 1)

	for _, endDate := range []string{"", "not-a-date", "05/20/2025"} {
		r := Score(domain.Assignment{Name: "Dateless", EndDate: endDate}, ref)
		assert.True(t, r.MissingDate, "endDate=%q", endDate)
		assert.Equal(t, domain.CategoryLow, r.Category)
		assert.Equal(t, 0, r.DaysUntilDue)
		assert.False(t, r.Overdue)
	}
}

func TestScore_SwappedDatesTolerated(t *testing.T) {
	ref := refDate(2025, 5, 1)

	// Start after end; the scorer only looks at the end date.
	r := Score(domain.Assignment{
		StartDate: "2025-05-20",
		EndDate:   "2025-05-03",
	}, ref)
	assert.Equal(t, domain.CategoryUrgent, r.Category)
}
