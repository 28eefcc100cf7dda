package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentmatch/backend/matching"
)

// ExtractKeywordsTool extracts skill keywords from free job description text
type ExtractKeywordsTool struct{}

// NewExtractKeywordsTool creates a new keyword extraction tool
func NewExtractKeywordsTool() *ExtractKeywordsTool {
	return &ExtractKeywordsTool{}
}

func (t *ExtractKeywordsTool) Name() string {
	return "extract_keywords"
}

func (t *ExtractKeywordsTool) Description() string {
	return `Extract technology and skill keywords from a job description.
Input is the raw description text. Returns the lowercase keyword list
the matching engine would use for skill scoring.`
}

func (t *ExtractKeywordsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Job description text",
			},
		},
		"required": []string{"text"},
	}
}

// ExtractKeywordsInput represents the input for keyword extraction
type ExtractKeywordsInput struct {
	Text string `json:"text"`
}

// ExtractKeywordsOutput represents the extracted keyword list
type ExtractKeywordsOutput struct {
	Keywords []string `json:"keywords"`
}

func (t *ExtractKeywordsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var extractInput ExtractKeywordsInput
	if err := json.Unmarshal(input, &extractInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	keywords := matching.ExtractKeywords(extractInput.Text)
	return NewSuccessResult(ExtractKeywordsOutput{Keywords: keywords})
}
