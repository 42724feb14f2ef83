package priority

import (
	"testing"
	"time"

	"github.com/greedyapp/greedy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_EmptyInput(t *testing.T) {
	rec := Recommend(nil, time.Now())

	assert.Equal(t, 0, rec.TotalAssignments)
	assert.Empty(t, rec.Prioritized)
	assert.NotEmpty(t, rec.Message)
}

func TestRecommend_OverdueRanksFirst(t *testing.T) {
	ref := refDate(2025, 5, 20)

	assignments := []domain.Assignment{
		{ID: "a", Name: "Overdue lab", ClassSlug: "bio", EndDate: "2025-05-19", Progress: 50},
		{ID: "b", Name: "Future essay", ClassSlug: "bio", EndDate: "2025-05-30", Progress: 0},
	}

	rec := Recommend(assignments, ref)

	require.Len(t, rec.Prioritized, 2)
	assert.Equal(t, "a", rec.Prioritized[0].ID)
	assert.Equal(t, domain.CategoryOverdue, rec.Prioritized[0].Category)
	assert.Equal(t, "b", rec.Prioritized[1].ID)
	// 10 days out lands in the <=14 bucket.
	assert.Equal(t, domain.CategoryMedium, rec.Prioritized[1].Category)
	assert.Equal(t, 2, rec.TotalAssignments)
}

func TestRecommend_StableTieOrder(t *testing.T) {
	ref := refDate(2025, 5, 1)

	// Identical dates and progress produce identical scores.
	assignments := []domain.Assignment{
		{ID: "first", EndDate: "2025-05-03", Progress: 20},
		{ID: "second", EndDate: "2025-05-03", Progress: 20},
		{ID: "third", EndDate: "2025-05-03", Progress: 20},
	}

	rec := Recommend(assignments, ref)

	require.Len(t, rec.Prioritized, 3)
	assert.Equal(t, "first", rec.Prioritized[0].ID)
	assert.Equal(t, "second", rec.Prioritized[1].ID)
	assert.Equal(t, "third", rec.Prioritized[2].ID)
}

func TestRecommend_ProjectionFields(t *testing.T) {
	ref := refDate(2025, 5, 1)

	rec := Recommend([]domain.Assignment{{
		ID:        "a-1",
		Name:      "Reading response",
		ClassSlug: "intro-to-ai",
		EndDate:   "2025-05-04",
		Progress:  130, // clamped in the projection
	}}, ref)

	require.Len(t, rec.Prioritized, 1)
	p := rec.Prioritized[0]
	assert.Equal(t, "a-1", p.ID)
	assert.Equal(t, "intro-to-ai", p.ClassSlug)
	assert.Equal(t, "2025-05-04", p.DueDate)
	assert.Equal(t, 3, p.DaysUntilDue)
	assert.Equal(t, 100, p.Progress)
	assert.Contains(t, rec.Message, "Reading response")
}

func TestRecommend_DatelessAssignmentsSinkToBottom(t *testing.T) {
	ref := refDate(2025, 5, 1)

	assignments := []domain.Assignment{
		{ID: "no-date", Name: "Someday", Progress: 0},
		{ID: "due-soon", Name: "Tomorrow", EndDate: "2025-05-02", Progress: 0},
	}

	rec := Recommend(assignments, ref)

	require.Len(t, rec.Prioritized, 2)
	assert.Equal(t, "due-soon", rec.Prioritized[0].ID)
	assert.Equal(t, domain.CategoryLow, rec.Prioritized[1].Category)
}
