package formatter

import (
	"fmt"
	"strings"

	"github.com/greedyapp/greedy/internal/priority"
)

// FormatRecommendation renders the ranked assignment list.
func FormatRecommendation(rec priority.Recommendation) string {
	var b strings.Builder

	b.WriteString(Header("What to work on"))
	b.WriteString("\n\n")

	if rec.TotalAssignments == 0 {
		b.WriteString(Dim(rec.Message))
		return b.String()
	}

	for i, a := range rec.Prioritized {
		due := "no due date"
		if a.DueDate != "" {
			due = "due " + a.DueDate
		}
		fmt.Fprintf(&b, "%2d. %s  %s\n", i+1, Bold(a.Name), CategoryBadge(a.Category))
		fmt.Fprintf(&b, "    %s  %s  %s\n",
			Dim(a.ClassSlug),
			Dim(due),
			RenderProgress(a.Progress, 10))
	}

	b.WriteString("\n")
	b.WriteString(rec.Message)
	return b.String()
}
