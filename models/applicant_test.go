package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentmatch/backend/matching"
)

func TestUpdateBehaviourRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateBehaviourRequest
		wantErr bool
	}{
		{"all unanswered", UpdateBehaviourRequest{}, false},
		{"valid answers", UpdateBehaviourRequest{IndependentVsTeam: 1, FastVsSteady: 5}, false},
		{"below scale", UpdateBehaviourRequest{StructuredVsOpen: -1}, true},
		{"above scale", UpdateBehaviourRequest{QuickVsThorough: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePreferencesRequestValidate(t *testing.T) {
	valid := UpdatePreferencesRequest{
		TargetJobTitle: "Frontend Engineer",
		RoleLevel:      matching.RoleLevelSenior,
		SalaryMin:      5000,
		SalaryMax:      8000,
		ModeOfWork:     matching.ModeHybrid,
	}
	require.NoError(t, valid.Validate())

	assert.Error(t, (&UpdatePreferencesRequest{RoleLevel: "Principal"}).Validate())
	assert.Error(t, (&UpdatePreferencesRequest{ModeOfWork: "Remote"}).Validate())
	assert.Error(t, (&UpdatePreferencesRequest{SalaryMin: 9000, SalaryMax: 5000}).Validate())
	assert.NoError(t, (&UpdatePreferencesRequest{}).Validate())
}

func TestApplicantRecordComplete(t *testing.T) {
	record := &ApplicantRecord{UserID: "a@example.com"}
	assert.False(t, record.Complete())

	record.Profile = &ApplicantProfile{Skills: []string{"Go"}}
	record.Preferences = &matching.ApplicantPreferences{}
	assert.False(t, record.Complete())

	record.Behaviour = &matching.ApplicantBehaviour{}
	assert.True(t, record.Complete())
}

func TestApplicantRecordMatchingData(t *testing.T) {
	record := &ApplicantRecord{
		Profile:     &ApplicantProfile{Skills: []string{"React"}},
		Preferences: &matching.ApplicantPreferences{RoleLevel: matching.RoleLevelJunior},
		Behaviour:   &matching.ApplicantBehaviour{FastVsSteady: 4},
	}

	data := record.MatchingData()
	assert.Equal(t, []string{"React"}, data.Skills)
	assert.Equal(t, matching.RoleLevelJunior, data.Preferences.RoleLevel)
	assert.Equal(t, 4, data.Behaviour.FastVsSteady)
}

func TestCreateJobRequestValidate(t *testing.T) {
	req := CreateJobRequest{
		Title: "Backend Engineer",
		Preferences: matching.JobPreferences{
			RoleLevel:  matching.RoleLevelSenior,
			SalaryMin:  6000,
			SalaryMax:  9000,
			ModeOfWork: matching.ModeOnSite,
		},
	}
	require.NoError(t, req.Validate())

	req.Preferences.SalaryMin = 10000
	assert.Error(t, req.Validate())
}

func TestIsValidMatchStatus(t *testing.T) {
	assert.True(t, IsValidMatchStatus(MatchStatusPending))
	assert.True(t, IsValidMatchStatus(MatchStatusAccepted))
	assert.False(t, IsValidMatchStatus("on_hold"))
}
