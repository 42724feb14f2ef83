package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
	"github.com/greedyapp/greedy/internal/extract"
	"github.com/greedyapp/greedy/internal/llm"
)

// maxSyllabusChars bounds how much extracted text goes into the prompt.
const maxSyllabusChars = 8000

// SyllabusImport is the outcome of importing one syllabus document: the
// created class plus the result of each drafted assignment.
type SyllabusImport struct {
	Class             *domain.Class            `json:"class"`
	Topics            []string                 `json:"topics,omitempty"`
	AssignmentResults []contract.CommandResult `json:"assignment_results,omitempty"`
}

// SyllabusService turns an uploaded syllabus into a class card with drafted
// assignments.
type SyllabusService interface {
	ImportSyllabus(ctx context.Context, file contract.FileRef) (*SyllabusImport, error)
}

type syllabusService struct {
	client     llm.Client
	extractor  extract.Extractor
	dispatcher Dispatcher
}

// NewSyllabusService creates a SyllabusService.
func NewSyllabusService(client llm.Client, extractor extract.Extractor, dispatcher Dispatcher) SyllabusService {
	return &syllabusService{
		client:     client,
		extractor:  extractor,
		dispatcher: dispatcher,
	}
}

// syllabusDraft is the JSON shape the model is asked to produce.
type syllabusDraft struct {
	ClassName   string   `json:"className"`
	Description string   `json:"description"`
	Schedule    string   `json:"schedule"`
	Topics      []string `json:"topics"`
	Assignments []struct {
		Name        string `json:"name"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
		Description string `json:"description"`
	} `json:"assignments"`
}

func validateSyllabusDraft(d syllabusDraft) error {
	if strings.TrimSpace(d.ClassName) == "" {
		return fmt.Errorf("className is required")
	}
	return nil
}

func (s *syllabusService) ImportSyllabus(ctx context.Context, file contract.FileRef) (*SyllabusImport, error) {
	text, err := s.extractor.ExtractText(ctx, file)
	if err != nil || strings.TrimSpace(text) == "" {
		// Image-only or unreadable documents fall back to the sample so the
		// demo flow still produces something inspectable.
		text = extract.SampleSyllabus(file.Name)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSyllabus,
		SystemPrompt: syllabusSystemPrompt,
		UserPrompt:   extract.Truncate(text, maxSyllabusChars),
		JSONOutput:   true,
	})
	if err != nil {
		return nil, contract.UpstreamError(fmt.Sprintf("syllabus extraction failed: %v", err))
	}

	draft, err := llm.ExtractJSON[syllabusDraft](resp.Text, validateSyllabusDraft)
	if err != nil {
		return nil, contract.UpstreamError(fmt.Sprintf("syllabus extraction returned malformed data: %v", err))
	}

	classResult := s.dispatcher.Dispatch(ctx, NormalizedCommand{
		Op: OpCreateClass,
		Class: &ClassDraft{
			ClassName:   draft.ClassName,
			Schedule:    draft.Schedule,
			Description: draft.Description,
		},
	})
	if !classResult.Success {
		return nil, &contract.CommandError{Kind: classResult.Error, Message: classResult.Message}
	}
	class, ok := classResult.Data.(*domain.Class)
	if !ok {
		return nil, contract.UpstreamError("class creation returned unexpected data")
	}

	out := &SyllabusImport{Class: class, Topics: draft.Topics}
	for _, a := range draft.Assignments {
		if strings.TrimSpace(a.Name) == "" {
			continue
		}
		result := s.dispatcher.Dispatch(ctx, NormalizedCommand{
			Op:        OpCreateAssignment,
			ClassSlug: class.Slug,
			Create: &AssignmentDraft{
				Name:        a.Name,
				StartDate:   a.StartDate,
				EndDate:     a.EndDate,
				Description: a.Description,
				FilesUsed:   true,
			},
		})
		out.AssignmentResults = append(out.AssignmentResults, result)
	}
	return out, nil
}
