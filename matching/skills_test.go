package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSkillsNoSkills(t *testing.T) {
	job := JobData{Title: "Frontend Engineer", JDText: "React required"}

	assert.Equal(t, 0, ScoreSkills(nil, job))
	assert.Equal(t, 0, ScoreSkills([]string{}, job))
}

func TestScoreSkillsFrontendScenario(t *testing.T) {
	skills := []string{"React", "TypeScript", "Next.js"}
	job := JobData{
		Title:  "Frontend Engineer",
		JDText: "React, TypeScript and Next.js required",
	}

	score := ScoreSkills(skills, job)

	// Three matched skills trigger the 60-point floor.
	assert.GreaterOrEqual(t, score, 60)
	assert.LessOrEqual(t, score, 100)
}

func TestScoreSkillsPartialMatch(t *testing.T) {
	skills := []string{"React", "TypeScript", "Next.js"}
	job := JobData{
		Title:  "Frontend Engineer",
		JDText: "React and TypeScript required",
	}

	// react and typescript match; keywords are react, typescript,
	// engineer (capitalized scan) and the injected frontend. Base is
	// round(2/3*50 + 2/4*50) = 58, above every applicable floor.
	assert.Equal(t, 58, ScoreSkills(skills, job))
}

func TestScoreSkillsDottedVariantMatch(t *testing.T) {
	skills := []string{"nextjs"}
	job := JobData{Title: "Developer", JDText: "We use Next.js"}

	score := ScoreSkills(skills, job)
	assert.Greater(t, score, 0, "nextjs should match next.js after stripping separators")
}

func TestScoreSkillsTwoMatchFloor(t *testing.T) {
	skills := []string{"python", "sql", "excel", "word", "powerpoint", "outlook", "access", "teams"}
	job := JobData{Title: "Analyst", JDText: "python and sql and Spark and Hadoop and Kafka and Airflow"}

	score := ScoreSkills(skills, job)
	assert.GreaterOrEqual(t, score, 40, "two matched skills guarantee at least 40")
}

func TestTitleHeuristicScore(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		title  string
		want   int
	}{
		{"frontend match", []string{"react", "vue"}, "frontend wizard", 70},
		{"backend match", []string{"python", "node"}, "backend guru", 70},
		{"full stack both", []string{"react", "python"}, "full stack ninja", 75},
		{"full stack one side", []string{"react"}, "full stack ninja", 50},
		{"skills but no domain signal", []string{"cooking"}, "chef", 50},
		{"no skills", nil, "chef", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titleHeuristicScore(tt.skills, tt.title))
		})
	}
}

func TestScoreSkillsFallsBackWithoutKeywords(t *testing.T) {
	// A title yielding no keywords at all routes through the title
	// heuristic; "full" alone is enough of a domain hint there.
	job := JobData{Title: "full time barista helper"}

	assert.Equal(t, 75, ScoreSkills([]string{"react", "python"}, job))
	assert.Equal(t, 50, ScoreSkills([]string{"cooking"}, JobData{Title: "chef"}))
}

func TestScoreSkillsRange(t *testing.T) {
	jobs := []JobData{
		{},
		{Title: "Frontend Engineer"},
		{Title: "Backend Developer", JDText: "go, python, docker, kubernetes, aws, sql"},
		{Title: "X", JDText: "React React React"},
	}
	skillSets := [][]string{
		nil,
		{"react"},
		{"react", "python", "docker", "aws", "sql", "git", "html", "css"},
	}

	for _, job := range jobs {
		for _, skills := range skillSets {
			score := ScoreSkills(skills, job)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}
