package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentmatch/backend/matching"
)

func TestScoreMatchToolExecute(t *testing.T) {
	tool := NewScoreMatchTool()

	input, err := json.Marshal(ScoreMatchInput{
		Applicant: matching.ApplicantData{
			Skills: []string{"React", "TypeScript"},
		},
		Job: matching.JobData{
			Title:  "Frontend Engineer",
			JDText: "React and TypeScript required",
		},
	})
	require.NoError(t, err)

	raw, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)

	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.True(t, result.Success)

	var scores matching.MatchScores
	require.NoError(t, json.Unmarshal(result.Data, &scores))
	assert.GreaterOrEqual(t, scores.SkillsScore, 40)
	assert.GreaterOrEqual(t, scores.OverallScore, 0)
	assert.LessOrEqual(t, scores.OverallScore, 100)
}

func TestScoreMatchToolInvalidInput(t *testing.T) {
	tool := NewScoreMatchTool()

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"applicant": 42}`))
	require.NoError(t, err)

	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestExtractKeywordsToolExecute(t *testing.T) {
	tool := NewExtractKeywordsTool()

	input, err := json.Marshal(ExtractKeywordsInput{Text: "We need React and Docker experience"})
	require.NoError(t, err)

	raw, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)

	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.True(t, result.Success)

	var output ExtractKeywordsOutput
	require.NoError(t, json.Unmarshal(result.Data, &output))
	assert.Contains(t, output.Keywords, "react")
	assert.Contains(t, output.Keywords, "docker")
}

func TestRegistryRoundTrip(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(NewScoreMatchTool())
	registry.Register(NewExtractKeywordsTool())

	tool, ok := registry.Get("score_match")
	require.True(t, ok)
	assert.Equal(t, "score_match", tool.Name())

	defs := registry.GetToolDefinitions()
	assert.Len(t, defs, 2)
}
