package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentmatch/backend/gemini"
	"github.com/talentmatch/backend/matching"
)

// MatchSummaryTool generates a plain-language explanation for a scored
// match using Gemini.
type MatchSummaryTool struct {
	geminiClient *gemini.Client
}

// NewMatchSummaryTool creates a new match summary tool
func NewMatchSummaryTool(geminiClient *gemini.Client) *MatchSummaryTool {
	return &MatchSummaryTool{
		geminiClient: geminiClient,
	}
}

func (t *MatchSummaryTool) Name() string {
	return "generate_match_summary"
}

func (t *MatchSummaryTool) Description() string {
	return `Generate a short plain-language summary explaining a match.
Input includes the applicant data, job data and the already computed
scores. The scores are explained, never recomputed or changed.`
}

func (t *MatchSummaryTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"applicant": map[string]interface{}{
				"type":        "object",
				"description": "Applicant with skills, preferences and behavioural answers",
			},
			"job": map[string]interface{}{
				"type":        "object",
				"description": "Job with title, description, preferences and behavioural expectations",
			},
			"scores": map[string]interface{}{
				"type":        "object",
				"description": "Computed skills, behaviour, preferences and overall scores",
			},
		},
		"required": []string{"applicant", "job", "scores"},
	}
}

// MatchSummaryInput represents the input for summary generation
type MatchSummaryInput struct {
	Applicant matching.ApplicantData `json:"applicant"`
	Job       matching.JobData       `json:"job"`
	Scores    matching.MatchScores   `json:"scores"`
}

// MatchSummaryOutput represents the generated summary
type MatchSummaryOutput struct {
	Summary string `json:"summary"`
}

func (t *MatchSummaryTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var summaryInput MatchSummaryInput
	if err := json.Unmarshal(input, &summaryInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	summary, err := t.geminiClient.GenerateMatchSummary(ctx, summaryInput.Applicant, summaryInput.Job, summaryInput.Scores)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("summary generation failed: %v", err))
	}

	return NewSuccessResult(MatchSummaryOutput{Summary: summary})
}
