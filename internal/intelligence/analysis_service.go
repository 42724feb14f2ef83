package intelligence

import (
	"context"
	"strings"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
	"github.com/greedyapp/greedy/internal/extract"
	"github.com/greedyapp/greedy/internal/llm"
)

// maxAnalysisChars bounds how much document text goes into the prompt.
const maxAnalysisChars = 4000

// PriorityAnalysis is the model's urgency judgment for one document.
type PriorityAnalysis struct {
	Priority domain.PriorityLevel `json:"priority"`
	Reason   string               `json:"reason"`
}

// AnalysisService judges assignment priority from an attached document.
// It never fails: anything that goes wrong degrades to medium priority
// with an explanatory reason.
type AnalysisService interface {
	AnalyzePriority(ctx context.Context, file contract.FileRef) PriorityAnalysis
}

type analysisService struct {
	client    llm.Client
	extractor extract.Extractor
}

// NewAnalysisService creates an AnalysisService.
func NewAnalysisService(client llm.Client, extractor extract.Extractor) AnalysisService {
	return &analysisService{client: client, extractor: extractor}
}

func mediumFallback(reason string) PriorityAnalysis {
	return PriorityAnalysis{Priority: domain.PriorityMedium, Reason: reason}
}

func (s *analysisService) AnalyzePriority(ctx context.Context, file contract.FileRef) PriorityAnalysis {
	text, err := s.extractor.ExtractText(ctx, file)
	if err != nil || strings.TrimSpace(text) == "" {
		return mediumFallback("Could not read the document, so a medium priority was assumed.")
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAnalyze,
		SystemPrompt: analysisSystemPrompt,
		UserPrompt:   extract.Truncate(text, maxAnalysisChars),
		JSONOutput:   true,
	})
	if err != nil {
		return mediumFallback("Priority analysis was unavailable, so a medium priority was assumed.")
	}

	analysis, err := llm.ExtractJSON[PriorityAnalysis](resp.Text, nil)
	if err != nil {
		return mediumFallback("Priority analysis returned an unreadable answer, so a medium priority was assumed.")
	}

	// Tolerate loose phrasing like "High priority" in the model output.
	analysis.Priority = domain.NormalizePriority(string(analysis.Priority))
	if analysis.Reason == "" {
		analysis.Reason = "No reason was given."
	}
	return analysis
}
