package formatter

import (
	"fmt"
	"strings"

	"github.com/greedyapp/greedy/internal/domain"
)

// FormatClassList renders the class cards, one line each.
func FormatClassList(classes []*domain.Class) string {
	var b strings.Builder

	b.WriteString(Header("Classes"))
	b.WriteString("\n\n")

	for _, c := range classes {
		fmt.Fprintf(&b, "%s  %s", Bold(c.Name), Dim("["+c.Slug+"]"))
		if c.Schedule != "" {
			fmt.Fprintf(&b, "  %s", StyleBlue.Render(c.Schedule))
		}
		b.WriteString("\n")
		if c.Description != "" {
			fmt.Fprintf(&b, "    %s\n", Dim(c.Description))
		}
	}

	return b.String()
}

// FormatAssignmentList renders the assignments of one class.
func FormatAssignmentList(assignments []*domain.Assignment) string {
	var b strings.Builder

	b.WriteString(Header("Assignments"))
	b.WriteString("\n\n")

	for _, a := range assignments {
		fmt.Fprintf(&b, "%s  %s\n", Bold(a.Name), Dim(a.ID))
		span := describeSpan(a.StartDate, a.EndDate)
		fmt.Fprintf(&b, "    %s  priority %s  %s\n",
			Dim(span), string(a.Priority), RenderProgress(a.Progress, 10))
		if a.Description != "" {
			fmt.Fprintf(&b, "    %s\n", Dim(a.Description))
		}
	}

	return b.String()
}

func describeSpan(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " → " + end
	case end != "":
		return "due " + end
	case start != "":
		return "starts " + start
	default:
		return "no dates"
	}
}
