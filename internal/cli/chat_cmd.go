package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greedyapp/greedy/internal/cli/formatter"
	"github.com/greedyapp/greedy/internal/contract"
)

var errLLMDisabled = errors.New("chat features need a model: set GEMINI_API_KEY and try again")

func newChatCmd(app *App) *cobra.Command {
	var class, selected string
	var files []string

	cmd := &cobra.Command{
		Use:   "chat [MESSAGE]",
		Short: "Talk to the assignment assistant",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Chat == nil {
				return errLLMDisabled
			}

			refs := make([]contract.FileRef, 0, len(files))
			for _, path := range files {
				ref, err := readFileRef(path)
				if err != nil {
					return err
				}
				refs = append(refs, ref)
			}

			if len(args) == 1 {
				return runChatTurn(app, args[0], class, selected, refs)
			}

			// No message on the command line: read turns from stdin when the
			// session is interactive.
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("no message given and stdin is not a terminal")
			}
			return runChatLoop(app, class, selected, refs)
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "Class slug the conversation is about")
	cmd.Flags().StringVar(&selected, "selected", "", "Assignment ID to treat as the selected target")
	cmd.Flags().StringArrayVar(&files, "file", nil, "Attach a file (repeatable)")

	return cmd
}

func runChatTurn(app *App, message, class, selected string, files []contract.FileRef) error {
	resp, err := app.Chat.Chat(context.Background(), contract.ChatRequest{
		Message:              message,
		Files:                files,
		SelectedAssignmentID: selected,
		ClassSlug:            class,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", formatter.FormatChatResponse(resp))
	return nil
}

func runChatLoop(app *App, class, selected string, files []contract.FileRef) error {
	fmt.Println(formatter.Dim("Chatting. Empty line quits."))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		if err := runChatTurn(app, line, class, selected, files); err != nil {
			return err
		}
		// Attachments apply to the first turn only.
		files = nil
	}
}

// readFileRef loads a local file into an attachment reference.
func readFileRef(path string) (contract.FileRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return contract.FileRef{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return contract.FileRef{
		Name: filepath.Base(path),
		Type: mimeTypeFor(path),
		Size: int64(len(data)),
		Data: data,
	}, nil
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return "text/plain"
	case ".md":
		return "text/markdown"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
