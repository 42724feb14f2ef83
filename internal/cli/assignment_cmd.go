package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greedyapp/greedy/internal/cli/formatter"
	"github.com/greedyapp/greedy/internal/domain"
)

func newAssignmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignment",
		Short: "Manage assignments",
	}

	cmd.AddCommand(
		newAssignmentAddCmd(app),
		newAssignmentListCmd(app),
		newAssignmentUpdateCmd(app),
		newAssignmentRemoveCmd(app),
		newAssignmentAnalyzeCmd(app),
	)

	return cmd
}

func newAssignmentAddCmd(app *App) *cobra.Command {
	var class, name, start, end, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.Assignment{
				ClassSlug:   class,
				Name:        name,
				StartDate:   start,
				EndDate:     end,
				Description: description,
			}
			if err := app.Assignments.Create(context.Background(), a); err != nil {
				return err
			}
			fmt.Printf("Created assignment %s [%s]\n", a.Name, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Class slug")
	cmd.Flags().StringVar(&name, "name", "", "Assignment title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "What the assignment covers")
	_ = cmd.MarkFlagRequired("class")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAssignmentListCmd(app *App) *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				assignments []*domain.Assignment
				err         error
			)
			if class != "" {
				assignments, err = app.Assignments.ListByClass(ctx, class)
			} else {
				assignments, err = app.Assignments.ListAll(ctx)
			}
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Println("No assignments found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatAssignmentList(assignments))
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Limit to one class slug")

	return cmd
}

func newAssignmentUpdateCmd(app *App) *cobra.Command {
	var name, start, end, description, priorityStr string
	var progress int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := app.Assignments.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				a.Name = name
			}
			if cmd.Flags().Changed("start") {
				a.StartDate = start
			}
			if cmd.Flags().Changed("due") {
				a.EndDate = end
			}
			if cmd.Flags().Changed("description") {
				a.Description = description
			}
			if cmd.Flags().Changed("progress") {
				a.Progress = domain.ClampProgress(progress)
			}
			if cmd.Flags().Changed("priority") {
				a.Priority = domain.NormalizePriority(priorityStr)
			}

			if err := app.Assignments.Update(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Updated assignment %s [%s]\n", a.Name, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Assignment title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "What the assignment covers")
	cmd.Flags().IntVar(&progress, "progress", 0, "Completion percentage (0-100)")
	cmd.Flags().StringVar(&priorityStr, "priority", "", "Priority (low|medium|high)")

	return cmd
}

func newAssignmentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assignments.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed assignment %s\n", args[0])
			return nil
		},
	}
}

func newAssignmentAnalyzeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Suggest a priority from an assignment document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Analysis == nil {
				return errLLMDisabled
			}
			file, err := readFileRef(args[0])
			if err != nil {
				return err
			}

			analysis := app.Analysis.AnalyzePriority(context.Background(), file)
			fmt.Printf("Suggested priority: %s\n%s\n", formatter.Bold(string(analysis.Priority)), analysis.Reason)
			return nil
		},
	}
}
