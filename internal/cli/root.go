package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/greedyapp/greedy/internal/intelligence"
	"github.com/greedyapp/greedy/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
// The intelligence services are nil when no API key is configured; commands
// that need them say so instead of failing mysteriously.
type App struct {
	Classes     service.ClassService
	Assignments service.AssignmentService
	Chat        intelligence.ChatService
	Syllabus    intelligence.SyllabusService
	Analysis    intelligence.AnalysisService

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "greedy" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "greedy",
		Short: "Class and assignment manager with a chat assistant",
	}

	// Flags are matched case-insensitively; --Class and --class are the same.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	root.AddCommand(
		newClassCmd(app),
		newAssignmentCmd(app),
		newRecommendCmd(app),
		newCalendarCmd(app),
		newChatCmd(app),
		newSyllabusCmd(app),
	)

	return root
}
