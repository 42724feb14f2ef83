package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/greedyapp/greedy/internal/cli/formatter"
	"github.com/greedyapp/greedy/internal/domain"
	"github.com/greedyapp/greedy/internal/priority"
)

func newRecommendCmd(app *App) *cobra.Command {
	var class, date string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank assignments by urgency",
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

			ref := time.Now().UTC()
			if date != "" {
				parsed, ok := domain.ParseDate(date)
				if !ok {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
				ref = parsed
			}

			assignments := make([]domain.Assignment, 0, len(list))
			for _, a := range list {
				assignments = append(assignments, *a)
			}

			rec := priority.Recommend(assignments, ref)
			fmt.Printf("%s\n", formatter.FormatRecommendation(rec))
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Limit to one class slug")
	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, defaults to today)")

	return cmd
}
