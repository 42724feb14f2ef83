package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greedyapp/greedy/internal/calendar"
	"github.com/greedyapp/greedy/internal/cli/formatter"
	"github.com/greedyapp/greedy/internal/domain"
)

func newCalendarCmd(app *App) *cobra.Command {
	var class, from, to string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show assignments on a calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				list []*domain.Assignment
				err  error
			)
			if class != "" {
				list, err = app.Assignments.ListByClass(ctx, class)
			} else {
				list, err = app.Assignments.ListAll(ctx)
			}
			if err != nil {
				return err
			}

			assignments := make([]domain.Assignment, 0, len(list))
			for _, a := range list {
				assignments = append(assignments, *a)
			}
			events := calendar.Expand(assignments)

			if from != "" || to != "" {
				fromDay, ok := domain.ParseDate(from)
				if !ok {
					return fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", from)
				}
				toDay, ok := domain.ParseDate(to)
				if !ok {
					return fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", to)
				}
				events = calendar.Between(events, fromDay, toDay)
			}

			fmt.Printf("%s\n", formatter.FormatCalendar(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Limit to one class slug")
	cmd.Flags().StringVar(&from, "from", "", "First day to show (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day to show (YYYY-MM-DD)")

	return cmd
}
