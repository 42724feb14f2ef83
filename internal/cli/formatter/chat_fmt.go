package formatter

import (
	"fmt"
	"strings"

	"github.com/greedyapp/greedy/internal/contract"
)

// FormatChatResponse renders the model's reply plus each command outcome.
func FormatChatResponse(resp *contract.ChatResponse) string {
	var b strings.Builder

	b.WriteString(resp.Text)

	for _, o := range resp.Outcomes {
		b.WriteString("\n")
		if o.Result.Success {
			fmt.Fprintf(&b, "%s %s", StyleGreen.Render("✔"), o.Result.Message)
		} else {
			fmt.Fprintf(&b, "%s %s %s",
				StyleRed.Render("✘"),
				StyleRed.Render("["+string(o.Result.Error)+"]"),
				o.Result.Message)
		}
	}

	return b.String()
}
