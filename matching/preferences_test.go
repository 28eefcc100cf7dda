package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePreferencesNoData(t *testing.T) {
	assert.Equal(t, 50, ScorePreferences(ApplicantPreferences{}, JobPreferences{}))
}

func TestScorePreferencesSeniorHybridScenario(t *testing.T) {
	applicant := ApplicantPreferences{
		RoleLevel:  RoleLevelSenior,
		SalaryMin:  5000,
		SalaryMax:  8000,
		ModeOfWork: ModeHybrid,
	}
	job := JobPreferences{
		RoleLevel:  RoleLevelSenior,
		SalaryMin:  6000,
		SalaryMax:  9000,
		ModeOfWork: ModeHybrid,
	}

	// Role 40 + salary (overlap 6000-8000 is 67% of the applicant's
	// 3000-wide range, 67*0.3 = 20.1) + mode 30 = 90.1, rounded to 90.
	assert.Equal(t, 90, ScorePreferences(applicant, job))
}

func TestScorePreferencesRoleLevelDistance(t *testing.T) {
	tests := []struct {
		name      string
		applicant string
		job       string
		want      int
	}{
		{"exact", RoleLevelSenior, RoleLevelSenior, 40},
		{"adjacent", RoleLevelJunior, RoleLevelSenior, 20},
		{"two apart", RoleLevelIntern, RoleLevelSenior, 10},
		{"three apart", RoleLevelIntern, RoleLevelLead, 0},
		{"unknown level", "Principal", RoleLevelLead, 0},
		{"unknown exact", "Principal", "Principal", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePreferences(
				ApplicantPreferences{RoleLevel: tt.applicant},
				JobPreferences{RoleLevel: tt.job},
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSalaryOverlapPercent(t *testing.T) {
	tests := []struct {
		name                       string
		appMin, appMax             int
		jobMin, jobMax             int
		want                       int
	}{
		{"full overlap", 5000, 8000, 4000, 9000, 100},
		{"partial overlap", 5000, 8000, 6000, 9000, 67},
		{"no overlap", 5000, 8000, 9000, 12000, 0},
		{"touching ranges", 5000, 8000, 8000, 9000, 0},
		{"degenerate applicant range", 5000, 5000, 4000, 9000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := salaryOverlapPercent(tt.appMin, tt.appMax, tt.jobMin, tt.jobMax)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScorePreferencesWorkMode(t *testing.T) {
	tests := []struct {
		name      string
		applicant string
		job       string
		want      int
	}{
		{"exact", ModeWorkFromHome, ModeWorkFromHome, 30},
		{"applicant hybrid", ModeHybrid, ModeOnSite, 15},
		{"job hybrid", ModeWorkFromHome, ModeHybrid, 15},
		{"incompatible", ModeWorkFromHome, ModeOnSite, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePreferences(
				ApplicantPreferences{ModeOfWork: tt.applicant},
				JobPreferences{ModeOfWork: tt.job},
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScorePreferencesIgnoresIncompleteSalary(t *testing.T) {
	// Salary only counts as a factor when all four bounds are present.
	applicant := ApplicantPreferences{SalaryMin: 5000, SalaryMax: 8000}
	job := JobPreferences{SalaryMin: 6000}

	assert.Equal(t, 50, ScorePreferences(applicant, job))
}
