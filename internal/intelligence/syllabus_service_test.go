package intelligence

import (
	"context"
	"errors"
	"testing"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
	"github.com/greedyapp/greedy/internal/extract"
	"github.com/greedyapp/greedy/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExtractor returns canned text or an error.
type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) ExtractText(context.Context, contract.FileRef) (string, error) {
	return m.text, m.err
}

func classCreatingDispatcher() *mockDispatcher {
	return &mockDispatcher{fn: func(cmd NormalizedCommand) contract.CommandResult {
		if cmd.Op == OpCreateClass {
			return contract.OK(&domain.Class{
				ID:   "c-1",
				Name: cmd.Class.ClassName,
				Slug: domain.Slugify(cmd.Class.ClassName),
			}, "class created")
		}
		return contract.OK(nil, "assignment created")
	}}
}

const syllabusJSON = `{
	"className": "Biology 101",
	"description": "Intro biology",
	"schedule": "MWF 9:00AM",
	"topics": ["cells", "genetics"],
	"assignments": [
		{"name": "Lab 1", "startDate": "2025-09-01", "endDate": "2025-09-15", "description": "First lab"},
		{"name": "", "endDate": "2025-10-01"}
	]
}`

func TestImportSyllabus_CreatesClassAndAssignments(t *testing.T) {
	client := &mockLLMClient{resp: &llm.GenerateResponse{Text: syllabusJSON}}
	dispatcher := classCreatingDispatcher()
	svc := NewSyllabusService(client, &mockExtractor{text: "Course: Biology 101 ..."}, dispatcher)

	got, err := svc.ImportSyllabus(context.Background(), contract.FileRef{Name: "syllabus.txt", Type: "text/plain"})

	require.NoError(t, err)
	assert.Equal(t, "Biology 101", got.Class.Name)
	assert.Equal(t, []string{"cells", "genetics"}, got.Topics)
	require.Len(t, got.AssignmentResults, 1, "nameless drafts are skipped")

	require.Len(t, dispatcher.cmds, 2)
	assert.Equal(t, OpCreateClass, dispatcher.cmds[0].Op)
	a := dispatcher.cmds[1]
	assert.Equal(t, OpCreateAssignment, a.Op)
	assert.Equal(t, "biology-101", a.ClassSlug)
	assert.Equal(t, "2025-09-15", a.Create.EndDate)
	assert.True(t, a.Create.FilesUsed)
}

func TestImportSyllabus_ExtractionFailureFallsBackToSample(t *testing.T) {
	client := &mockLLMClient{resp: &llm.GenerateResponse{Text: `{"className":"Sampled"}`}}
	svc := NewSyllabusService(client, &mockExtractor{err: errors.New("image-only pdf")}, classCreatingDispatcher())

	_, err := svc.ImportSyllabus(context.Background(), contract.FileRef{Name: "scan.pdf", Type: "application/pdf"})

	require.NoError(t, err)
	assert.Contains(t, client.lastReq.UserPrompt, "scan.pdf")
	assert.Contains(t, client.lastReq.UserPrompt, extract.SampleSyllabus("scan.pdf")[:20])
}

func TestImportSyllabus_MalformedModelOutput(t *testing.T) {
	client := &mockLLMClient{resp: &llm.GenerateResponse{Text: "I could not find a syllabus here."}}
	svc := NewSyllabusService(client, &mockExtractor{text: "stuff"}, classCreatingDispatcher())

	_, err := svc.ImportSyllabus(context.Background(), contract.FileRef{Name: "x.txt"})
	require.Error(t, err)
	assert.Equal(t, contract.ErrKindUpstream, contract.KindOf(err))
}

func TestImportSyllabus_MissingClassNameRejected(t *testing.T) {
	client := &mockLLMClient{resp: &llm.GenerateResponse{Text: `{"schedule":"MWF"}`}}
	svc := NewSyllabusService(client, &mockExtractor{text: "stuff"}, classCreatingDispatcher())

	_, err := svc.ImportSyllabus(context.Background(), contract.FileRef{Name: "x.txt"})
	require.Error(t, err)
	assert.Equal(t, contract.ErrKindUpstream, contract.KindOf(err))
}

func TestImportSyllabus_ClassCreationFailurePropagates(t *testing.T) {
	client := &mockLLMClient{resp: &llm.GenerateResponse{Text: syllabusJSON}}
	dispatcher := &mockDispatcher{fn: func(NormalizedCommand) contract.CommandResult {
		return contract.Fail(contract.ValidationError("class name is empty after trimming"))
	}}
	svc := NewSyllabusService(client, &mockExtractor{text: "stuff"}, dispatcher)

	_, err := svc.ImportSyllabus(context.Background(), contract.FileRef{Name: "x.txt"})
	require.Error(t, err)
	assert.Equal(t, contract.ErrKindValidation, contract.KindOf(err))
}

func TestImportSyllabus_LLMFailureIsUpstream(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrTimeout}
	svc := NewSyllabusService(client, &mockExtractor{text: "stuff"}, classCreatingDispatcher())

	_, err := svc.ImportSyllabus(context.Background(), contract.FileRef{Name: "x.txt"})
	require.Error(t, err)
	assert.Equal(t, contract.ErrKindUpstream, contract.KindOf(err))
}
