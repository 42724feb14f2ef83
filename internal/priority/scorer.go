package priority

import (
	"math"
	"time"

	"github.com/greedyapp/greedy/internal/domain"
)

// Weights for combining the time and progress factors into one score.
const (
	timeWeight     = 0.7
	progressWeight = 0.3
)

// Result is the urgency analysis for a single assignment at a reference date.
//
// DaysUntilDue is clamped to >= 0, so it cannot be used to detect overdue
// work; Overdue is computed by comparing the due date against the reference
// date directly and is authoritative for both the category and the time
// factor.
type Result struct {
	DaysUntilDue int
	Score        float64
	Category     domain.PriorityCategory
	Overdue      bool

	// MissingDate flags an absent or unparseable due date. Such assignments
	// score as Low rather than failing the whole recommendation pass.
	MissingDate bool
}

// Score computes the urgency of one assignment relative to ref.
func Score(a domain.Assignment, ref time.Time) Result {
	progressFactor := 1 - float64(domain.ClampProgress(a.Progress))/100

	end, ok := domain.ParseDate(a.EndDate)
	if !ok {
		// Treat a dateless assignment like one that is far from due.
		return Result{
			DaysUntilDue: 0,
			Score:        timeWeight*farFactor + progressWeight*progressFactor,
			Category:     domain.CategoryLow,
			MissingDate:  true,
		}
	}

	overdue := end.Before(ref)
	days := int(math.Ceil(end.Sub(ref).Hours() / 24))
	if days < 0 {
		days = 0
	}

	return Result{
		DaysUntilDue: days,
		Score:        timeWeight*timeFactor(overdue, days) + progressWeight*progressFactor,
		Category:     categorize(overdue, days),
		Overdue:      overdue,
	}
}

// farFactor is the time factor for deadlines more than a week out, and the
// floor used when no deadline is known at all.
const farFactor = 4

// timeFactor is a step function of due-date proximity. The overdue branch is
// keyed on the direct date comparison, not the clamped day count.
func timeFactor(overdue bool, daysUntilDue int) float64 {
	switch {
	case overdue:
		return 12
	case daysUntilDue <= 1:
		return 10
	case daysUntilDue <= 3:
		return 8
	case daysUntilDue <= 7:
		return 6
	default:
		return farFactor
	}
}

func categorize(overdue bool, daysUntilDue int) domain.PriorityCategory {
	switch {
	case overdue:
		return domain.CategoryOverdue
	case daysUntilDue <= 2:
		return domain.CategoryUrgent
	case daysUntilDue <= 7:
		return domain.CategoryHigh
	case daysUntilDue <= 14:
		return domain.CategoryMedium
	default:
		return domain.CategoryLow
	}
}
