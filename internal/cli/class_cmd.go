package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greedyapp/greedy/internal/cli/formatter"
	"github.com/greedyapp/greedy/internal/domain"
	"github.com/greedyapp/greedy/internal/service"
)

func newClassCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage class cards",
	}

	cmd.AddCommand(
		newClassAddCmd(app),
		newClassListCmd(app),
		newClassInspectCmd(app),
		newClassUpdateCmd(app),
		newClassRemoveCmd(app),
	)

	return cmd
}

func newClassAddCmd(app *App) *cobra.Command {
	var name, description, schedule, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new class card",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Classes.Create(context.Background(), name, description, schedule, color)
			if err != nil {
				return err
			}
			fmt.Printf("Created class %s [%s]\n", c.Name, c.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Class name")
	cmd.Flags().StringVar(&description, "description", "", "What the class covers")
	cmd.Flags().StringVar(&schedule, "schedule", "", "Meeting schedule, e.g. \"MWF 10:00-11:30AM\"")
	cmd.Flags().StringVar(&color, "color", "", "Display color (random when omitted)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newClassListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List class cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := app.Classes.List(context.Background())
			if err != nil {
				return err
			}
			if len(classes) == 0 {
				fmt.Println("No classes yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatClassList(classes))
			return nil
		},
	}
}

func newClassInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect SLUG",
		Short: "Show a class and its assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := app.Classes.GetBySlug(ctx, args[0])
			if err != nil {
				return err
			}
			assignments, err := app.Assignments.ListByClass(ctx, c.Slug)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatClassList([]*domain.Class{c}))
			if len(assignments) == 0 {
				fmt.Println("No assignments yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatAssignmentList(assignments))
			return nil
		},
	}
}

func newClassUpdateCmd(app *App) *cobra.Command {
	var description, schedule, color string

	cmd := &cobra.Command{
		Use:   "update SLUG",
		Short: "Update a class card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := service.ClassUpdate{}
			if cmd.Flags().Changed("description") {
				fields.Description = &description
			}
			if cmd.Flags().Changed("schedule") {
				fields.Schedule = &schedule
			}
			if cmd.Flags().Changed("color") {
				fields.Color = &color
			}

			c, err := app.Classes.Update(context.Background(), args[0], fields)
			if err != nil {
				return err
			}
			fmt.Printf("Updated class %s [%s]\n", c.Name, c.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "What the class covers")
	cmd.Flags().StringVar(&schedule, "schedule", "", "Meeting schedule")
	cmd.Flags().StringVar(&color, "color", "", "Display color")

	return cmd
}

func newClassRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SLUG",
		Short: "Remove a class and its assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Classes.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed class %s\n", args[0])
			return nil
		},
	}
}
