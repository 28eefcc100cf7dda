package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentmatch/backend/matching"
)

// ScoreMatchTool computes deterministic compatibility scores for an
// applicant/job pair using the matching engine.
type ScoreMatchTool struct{}

// NewScoreMatchTool creates a new match scoring tool
func NewScoreMatchTool() *ScoreMatchTool {
	return &ScoreMatchTool{}
}

func (t *ScoreMatchTool) Name() string {
	return "score_match"
}

func (t *ScoreMatchTool) Description() string {
	return `Score how well an applicant matches a job posting.
Input should include the applicant data (skills, preferences, behaviour)
and the job data (title, description, preferences, behaviour).
Returns skills, behaviour, preferences and overall scores (0-100).
Scoring is deterministic: the same input always yields the same scores.`
}

func (t *ScoreMatchTool) InputSchema() map[string]interface{} {
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
		},
		"required": []string{"applicant", "job"},
	}
}

// ScoreMatchInput represents the input for match scoring
type ScoreMatchInput struct {
	Applicant matching.ApplicantData `json:"applicant"`
	Job       matching.JobData       `json:"job"`
}

func (t *ScoreMatchTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var scoreInput ScoreMatchInput
	if err := json.Unmarshal(input, &scoreInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	scores := matching.ComputeScores(scoreInput.Applicant, scoreInput.Job)
	return NewSuccessResult(scores)
}
