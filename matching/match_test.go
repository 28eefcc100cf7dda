package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strongApplicant() ApplicantData {
	return ApplicantData{
		Skills: []string{"React", "TypeScript", "Next.js"},
		Preferences: ApplicantPreferences{
			RoleLevel:  RoleLevelSenior,
			SalaryMin:  5000,
			SalaryMax:  8000,
			ModeOfWork: ModeHybrid,
		},
		Behaviour: ApplicantBehaviour{
			IndependentVsTeam: 1,
			StructuredVsOpen:  2,
			FastVsSteady:      1,
		},
	}
}

func strongJob() JobData {
	return JobData{
		Title:  "Frontend Engineer",
		JDText: "React, TypeScript and Next.js required",
		Preferences: JobPreferences{
			RoleLevel:  RoleLevelSenior,
			SalaryMin:  6000,
			SalaryMax:  9000,
			ModeOfWork: ModeHybrid,
		},
		Behaviour: JobBehaviour{
			WorkStyle:       "Independent",
			TaskStructure:   "Structured",
			EnvironmentPace: "Fast-paced",
		},
	}
}

func TestComputeScoresDeterministic(t *testing.T) {
	applicant := strongApplicant()
	job := strongJob()

	first := ComputeScores(applicant, job)
	second := ComputeScores(applicant, job)

	assert.Equal(t, first, second)
}

func TestComputeScoresRange(t *testing.T) {
	pairs := []struct {
		applicant ApplicantData
		job       JobData
	}{
		{ApplicantData{}, JobData{}},
		{strongApplicant(), strongJob()},
		{ApplicantData{Skills: []string{"cobol"}}, strongJob()},
		{strongApplicant(), JobData{Title: "Gardener"}},
	}

	for _, p := range pairs {
		scores := ComputeScores(p.applicant, p.job)
		for _, s := range []int{scores.SkillsScore, scores.BehaviourScore, scores.PrefsScore, scores.OverallScore} {
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, 100)
		}
	}
}

func TestComputeScoresNeutralDefaults(t *testing.T) {
	scores := ComputeScores(ApplicantData{}, JobData{})

	assert.Equal(t, 0, scores.SkillsScore)
	assert.Equal(t, 50, scores.BehaviourScore)
	assert.Equal(t, 50, scores.PrefsScore)
}

func TestCombineWeightedBase(t *testing.T) {
	// No boost applies: plain 40/30/30 weighting.
	assert.Equal(t, 56, combine(50, 60, 60))
	assert.Equal(t, 0, combine(0, 0, 0))
	assert.Equal(t, 100, combine(100, 100, 100))
}

func TestCombineBoostAllStrong(t *testing.T) {
	// All three sub-scores at 70 or above add round(sum/30) on top of
	// the weighted base.
	base := round(70*0.4 + 70*0.3 + 70*0.3)
	got := combine(70, 70, 70)

	assert.Equal(t, base+round(210.0/30), got)
	assert.Greater(t, got, base)

	// One sub-score below 70 disables the boost entirely.
	assert.Equal(t, round(70*0.4+69*0.3+70*0.3), combine(70, 69, 70))
}

func TestCombineBoostSingleStandout(t *testing.T) {
	// Weighted base is 44, but one sub-score at 90+ floors the overall
	// at 85.
	got := combine(95, 10, 10)

	require.GreaterOrEqual(t, got, 85)
	assert.Equal(t, 85, got)
}

func TestCombineBoostOrdering(t *testing.T) {
	// The additive boost applies before the 85 floor; when all three
	// are high, the boosted value already exceeds the floor.
	got := combine(95, 95, 95)
	boosted := min(100, round(95.0)+round(285.0/30))

	assert.Equal(t, boosted, got)
	assert.GreaterOrEqual(t, got, 85)
}

func TestComputeScoresStrongPair(t *testing.T) {
	scores := ComputeScores(strongApplicant(), strongJob())

	assert.GreaterOrEqual(t, scores.SkillsScore, 60)
	assert.Equal(t, 100, scores.BehaviourScore)
	assert.Equal(t, 90, scores.PrefsScore)

	weightedBase := round(float64(scores.SkillsScore)*0.4 +
		float64(scores.BehaviourScore)*0.3 +
		float64(scores.PrefsScore)*0.3)
	assert.GreaterOrEqual(t, scores.OverallScore, weightedBase)
}
