package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greedyapp/greedy/internal/cli/formatter"
)

func newSyllabusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "syllabus FILE",
		Short: "Create a class card and assignments from a syllabus document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Syllabus == nil {
				return errLLMDisabled
			}
			file, err := readFileRef(args[0])
			if err != nil {
				return err
			}

			imported, err := app.Syllabus.ImportSyllabus(context.Background(), file)
			if err != nil {
				return err
			}

			fmt.Printf("Created class %s [%s]\n", imported.Class.Name, imported.Class.Slug)
			if len(imported.Topics) > 0 {
				fmt.Printf("Topics: %s\n", formatter.Dim(fmt.Sprint(imported.Topics)))
			}
			for _, r := range imported.AssignmentResults {
				if r.Success {
					fmt.Printf("  %s\n", r.Message)
				} else {
					fmt.Printf("  skipped: %s\n", r.Message)
				}
			}
			return nil
		},
	}
}
