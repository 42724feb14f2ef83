package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/greedyapp/greedy/internal/calendar"
)

// FormatCalendar renders a date-keyed event map in chronological order.
func FormatCalendar(events map[string][]calendar.Event) string {
	var b strings.Builder

	b.WriteString(Header("Calendar"))
	b.WriteString("\n\n")

	if len(events) == 0 {
		b.WriteString(Dim("Nothing scheduled."))
		return b.String()
	}

	days := make([]string, 0, len(events))
	for day := range events {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		fmt.Fprintf(&b, "%s\n", StyleHeader.Render(day))
		for _, e := range events[day] {
			marker := "  "
			switch {
			case e.IsStart && e.IsEnd:
				marker = StylePurple.Render("◆ ")
			case e.IsStart:
				marker = StyleGreen.Render("▶ ")
			case e.IsEnd:
				marker = StyleRed.Render("■ ")
			}
			fmt.Fprintf(&b, "  %s%s  %s\n", marker, e.Name, Dim(e.ClassSlug))
		}
	}

	return b.String()
}
