package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_PlainText(t *testing.T) {
	e := NewTextExtractor()

	text, err := e.ExtractText(context.Background(), contract.FileRef{
		Name: "syllabus.txt",
		Type: "text/plain",
		Data: []byte("Course: Biology 101"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Course: Biology 101", text)
}

func TestTextExtractor_MarkdownByExtension(t *testing.T) {
	e := NewTextExtractor()

	text, err := e.ExtractText(context.Background(), contract.FileRef{
		Name: "notes.md",
		Type: "application/octet-stream",
		Data: []byte("# Week 1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "# Week 1", text)
}

func TestTextExtractor_RejectsBinary(t *testing.T) {
	e := NewTextExtractor()

	_, err := e.ExtractText(context.Background(), contract.FileRef{
		Name: "photo.png",
		Type: "image/png",
		Data: []byte{0x89, 0x50, 0x4e, 0x47},
	})
	assert.Error(t, err)
}

func TestTextExtractor_RejectsInvalidUTF8(t *testing.T) {
	e := NewTextExtractor()

	_, err := e.ExtractText(context.Background(), contract.FileRef{
		Name: "broken.txt",
		Type: "text/plain",
		Data: []byte{0xff, 0xfe, 0xfd},
	})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abcd", 2))

	// Multi-byte runes are never split.
	s := strings.Repeat("é", 3) // 6 bytes
	got := Truncate(s, 5)
	assert.Equal(t, "éé", got)
}

func TestSampleSyllabus(t *testing.T) {
	text := SampleSyllabus("upload.pdf")
	assert.Contains(t, text, "upload.pdf")
	assert.Contains(t, text, "Assignments:")
}
