package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/talentmatch/backend/config"
	"github.com/talentmatch/backend/matching"
	"github.com/talentmatch/backend/models"
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Configure model parameters
	model.SetTemperature(0.2) // Lower temperature for more consistent outputs
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(2048)

	return &Client{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// FallbackSummary returns the deterministic summary used when the model
// is unavailable. Scores are computed without AI, so a missing summary
// must never block a match.
func FallbackSummary(jobTitle string, scores matching.MatchScores) string {
	return fmt.Sprintf(
		"Overall compatibility with %s is %d%%, based on skills (%d%%), working style (%d%%) and preferences (%d%%).",
		jobTitle, scores.OverallScore, scores.SkillsScore, scores.BehaviourScore, scores.PrefsScore)
}

// GenerateMatchSummary produces a short plain-language explanation of
// a match. On any model failure it falls back to a deterministic
// sentence built from the scores.
func (c *Client) GenerateMatchSummary(ctx context.Context, applicant matching.ApplicantData, job matching.JobData, scores matching.MatchScores) (string, error) {
	prompt := fmt.Sprintf(`You are explaining a job match to a candidate.

CANDIDATE SKILLS: %s
CANDIDATE TARGET ROLE: %s (%s)
JOB TITLE: %s
JOB DESCRIPTION: %s

COMPUTED SCORES (do not change them):
- skills: %d/100
- working style: %d/100
- preferences: %d/100
- overall: %d/100

Write 2-3 friendly sentences summarizing why this job does or does not
fit the candidate. Mention the strongest and weakest factors. Do not
invent skills or requirements that are not listed above.

Return ONLY the summary text, no markdown, no preamble.`,
		strings.Join(applicant.Skills, ", "),
		applicant.Preferences.TargetJobTitle, applicant.Preferences.RoleLevel,
		job.Title, truncate(job.JDText, 2000),
		scores.SkillsScore, scores.BehaviourScore, scores.PrefsScore, scores.OverallScore)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("[Gemini] Match summary failed, using fallback: %v", err)
		return FallbackSummary(job.Title, scores), nil
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return FallbackSummary(job.Title, scores), nil
	}

	return text, nil
}

// ExtractSkillsFromResume extracts a flat skill list from resume bytes
// using Gemini's multimodal capability.
func (c *Client) ExtractSkillsFromResume(ctx context.Context, data []byte, contentType string) ([]string, error) {
	prompt := `Analyze this resume and extract the candidate's skills.
Return a JSON object:

{
  "skills": ["React", "TypeScript", "PostgreSQL"]
}

Include programming languages, frameworks, databases, tools and
notable soft skills. Use the exact names as written in the resume.

Return ONLY the JSON object, no markdown formatting, no explanation.`

	blob := genai.Blob{
		MIMEType: contentType,
		Data:     data,
	}

	resp, err := c.model.GenerateContent(ctx, blob, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var result struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Failed to parse skills response: %s", text)
		return nil, fmt.Errorf("failed to parse skills JSON: %w", err)
	}

	log.Printf("[Gemini] Extracted %d skills from resume", len(result.Skills))
	return result.Skills, nil
}

// ExtractSkillsFromText extracts skills from already extracted resume text.
func (c *Client) ExtractSkillsFromText(ctx context.Context, resumeText string) ([]string, error) {
	prompt := fmt.Sprintf(`Extract the candidate's skills from this resume text.
Return a JSON object:

{
  "skills": ["React", "TypeScript", "PostgreSQL"]
}

RESUME TEXT:
%s

Return ONLY the JSON object, no markdown formatting, no explanation.`, truncate(resumeText, 20000))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var result struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Failed to parse skills response: %s", text)
		return nil, fmt.Errorf("failed to parse skills JSON: %w", err)
	}

	return result.Skills, nil
}

// ExtractPreferencesFromCoverLetter suggests job preferences from a
// cover letter. Suggestions are advisory and the applicant confirms
// them before they are stored.
func (c *Client) ExtractPreferencesFromCoverLetter(ctx context.Context, data []byte, contentType string) (*models.UpdatePreferencesRequest, error) {
	prompt := `Analyze this cover letter and infer the candidate's job preferences.
Return a JSON object (use empty string or 0 for anything not stated or implied):

{
  "target_job_title": "Frontend Engineer",
  "role_level": "Intern|Junior|Senior|Lead",
  "salary_min": 0,
  "salary_max": 0,
  "mode_of_work": "Work from Home|On site|Hybrid"
}

Only fill fields the letter supports. Do not guess salaries unless
numbers are mentioned.

Return ONLY the JSON object, no markdown formatting, no explanation.`

	blob := genai.Blob{
		MIMEType: contentType,
		Data:     data,
	}

	resp, err := c.model.GenerateContent(ctx, blob, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))

	var prefs models.UpdatePreferencesRequest
	if err := json.Unmarshal([]byte(text), &prefs); err != nil {
		log.Printf("Failed to parse cover letter response: %s", text)
		return nil, fmt.Errorf("failed to parse preferences JSON: %w", err)
	}

	// Drop out-of-domain values instead of failing the whole analysis.
	if err := prefs.Validate(); err != nil {
		log.Printf("[Gemini] Dropping invalid suggested preferences: %v", err)
		return &models.UpdatePreferencesRequest{TargetJobTitle: prefs.TargetJobTitle}, nil
	}

	return &prefs, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
