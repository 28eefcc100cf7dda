package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreBehaviourNoData(t *testing.T) {
	assert.Equal(t, 50, ScoreBehaviour(ApplicantBehaviour{}, JobBehaviour{}))
}

func TestScoreBehaviourSkipsIncompleteAxes(t *testing.T) {
	// Applicant answered one axis the job did not describe, and vice
	// versa: nothing to compare, neutral result.
	applicant := ApplicantBehaviour{IndependentVsTeam: 1}
	job := JobBehaviour{TaskStructure: "Structured"}

	assert.Equal(t, 50, ScoreBehaviour(applicant, job))
}

func TestScoreBehaviourAlignment(t *testing.T) {
	tests := []struct {
		name      string
		answer    int
		workStyle string
		want      int
	}{
		{"strong match first pole", 1, "Independent", 100},
		{"strong match second pole", 5, "Team player", 100},
		{"applicant neutral", 3, "Team", 100},
		{"job label neutral", 1, "Whatever works", 100},
		{"hard mismatch", 1, "Team", 0},
		{"hard mismatch reversed", 5, "Independent", 0},
		{"mild lean mismatch low", 2, "Team", 50},
		{"mild lean mismatch high", 4, "Independent", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applicant := ApplicantBehaviour{IndependentVsTeam: tt.answer}
			job := JobBehaviour{WorkStyle: tt.workStyle}
			assert.Equal(t, tt.want, ScoreBehaviour(applicant, job))
		})
	}
}

func TestScoreBehaviourMultipleAxes(t *testing.T) {
	applicant := ApplicantBehaviour{
		IndependentVsTeam: 1, // matches Independent
		FastVsSteady:      5, // mismatches Fast-paced, no partial credit
		StructuredVsOpen:  4, // mismatches Structured, mild lean: 0.5
	}
	job := JobBehaviour{
		WorkStyle:       "Independent",
		EnvironmentPace: "Fast-paced",
		TaskStructure:   "Structured",
	}

	// (1.0 + 0 + 0.5) / 3 axes = 50.
	assert.Equal(t, 50, ScoreBehaviour(applicant, job))
}

func TestJobPoleKeywords(t *testing.T) {
	firstLabels := []string{"Independent", "Structured", "Fast-paced", "Quick decisions", "Hands-on", "Regular feedback", "Innovation first", "Flexible hours"}
	secondLabels := []string{"Team", "Open-ended", "Steady", "Thorough", "Strategic", "Autonomy", "Process driven", "Set schedule"}

	for _, label := range firstLabels {
		assert.Equal(t, poleFirst, jobPole(label), label)
	}
	for _, label := range secondLabels {
		assert.Equal(t, poleSecond, jobPole(label), label)
	}
	assert.Equal(t, poleNeutral, jobPole("Balanced"))
}
