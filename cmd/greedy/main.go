package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/greedyapp/greedy/internal/cli"
	"github.com/greedyapp/greedy/internal/db"
	"github.com/greedyapp/greedy/internal/extract"
	"github.com/greedyapp/greedy/internal/intelligence"
	"github.com/greedyapp/greedy/internal/llm"
	"github.com/greedyapp/greedy/internal/repository"
	"github.com/greedyapp/greedy/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.greedy/greedy.db
	dbPath := os.Getenv("GREEDY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".greedy", "greedy.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	classRepo := repository.NewSQLiteClassRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)

	classes := service.NewClassService(classRepo)
	assignments := service.NewAssignmentService(assignmentRepo, classRepo)
	dispatcher := service.NewCommandDispatcher(classes, assignments)

	app := &cli.App{
		Classes:     classes,
		Assignments: assignments,
	}

	// Detect interactive terminal for the chat loop.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire model-backed services only when an API key is configured.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewGeminiClient(llmCfg, observer)
		extractor := extract.NewTextExtractor()

		app.Chat = intelligence.NewChatService(client, intelligence.NewInterpreter(), dispatcher)
		app.Syllabus = intelligence.NewSyllabusService(client, extractor, dispatcher)
		app.Analysis = intelligence.NewAnalysisService(client, extractor)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
