package extract

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/greedyapp/greedy/internal/contract"
)

// Extractor pulls plain text out of an uploaded document. Implementations may
// legitimately return empty text for image-only documents.
type Extractor interface {
	ExtractText(ctx context.Context, file contract.FileRef) (string, error)
}

// TextExtractor handles plain-text and markdown uploads directly. Binary
// formats it does not understand produce an error rather than garbage text.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) ExtractText(_ context.Context, file contract.FileRef) (string, error) {
	switch {
	case strings.HasPrefix(file.Type, "text/"),
		file.Type == "application/json",
		strings.HasSuffix(file.Name, ".txt"),
		strings.HasSuffix(file.Name, ".md"):
		if !utf8.Valid(file.Data) {
			return "", fmt.Errorf("file %q is not valid UTF-8 text", file.Name)
		}
		return string(file.Data), nil
	default:
		return "", fmt.Errorf("unsupported document type %q for %q", file.Type, file.Name)
	}
}

// Truncate limits text to at most n bytes, cutting at a rune boundary so the
// result stays valid UTF-8 for the model prompt.
func Truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
