package priority

import (
	"fmt"
	"sort"
	"time"

	"github.com/greedyapp/greedy/internal/domain"
)

// ScoredAssignment is the recommendation projection of one assignment.
type ScoredAssignment struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	ClassSlug    string                  `json:"className"`
	DueDate      string                  `json:"dueDate"`
	DaysUntilDue int                     `json:"daysUntilDue"`
	Progress     int                     `json:"progress"`
	Score        float64                 `json:"priorityScore"`
	Category     domain.PriorityCategory `json:"priorityCategory"`
}

// Recommendation summarizes a full collection of assignments by urgency.
type Recommendation struct {
	TotalAssignments int                `json:"totalAssignments"`
	Prioritized      []ScoredAssignment `json:"prioritizedAssignments"`
	Message          string             `json:"message"`
}

// Recommend scores every assignment against ref and returns them sorted by
// descending score. The caller supplies the full collection on every call;
// there is no hidden cache behind this function. Ties keep input order.
func Recommend(assignments []domain.Assignment, ref time.Time) Recommendation {
	if len(assignments) == 0 {
		return Recommendation{
			TotalAssignments: 0,
			Prioritized:      []ScoredAssignment{},
			Message:          "There are no assignments to prioritize yet.",
		}
	}

	scored := make([]ScoredAssignment, 0, len(assignments))
	for _, a := range assignments {
		r := Score(a, ref)
		scored = append(scored, ScoredAssignment{
			ID:           a.ID,
			Name:         a.Name,
			ClassSlug:    a.ClassSlug,
			DueDate:      a.EndDate,
			DaysUntilDue: r.DaysUntilDue,
			Progress:     domain.ClampProgress(a.Progress),
			Score:        r.Score,
			Category:     r.Category,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return Recommendation{
		TotalAssignments: len(scored),
		Prioritized:      scored,
		Message: fmt.Sprintf("Ranked %d assignments by urgency; %q needs attention first (%s).",
			len(scored), scored[0].Name, scored[0].Category),
	}
}
