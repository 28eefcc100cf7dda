package models

import (
	"fmt"
	"time"

	"github.com/talentmatch/backend/matching"
)

// ApplicantProfile represents an applicant's onboarding profile in Firestore
// @Description Applicant profile with uploaded documents and extracted skills
type ApplicantProfile struct {
	UserID         string    `json:"user_id" firestore:"-"`
	ResumeURL      string    `json:"resume_url,omitempty" firestore:"resumeUrl"`
	CoverLetterURL string    `json:"cover_letter_url,omitempty" firestore:"coverLetterUrl"`
	PhotoURL       string    `json:"photo_url,omitempty" firestore:"photoUrl"`
	Skills         []string  `json:"skills" firestore:"skills"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ApplicantRecord bundles everything needed to score an applicant.
type ApplicantRecord struct {
	UserID      string                        `json:"user_id"`
	Email       string                        `json:"email"`
	FullName    string                        `json:"full_name"`
	Profile     *ApplicantProfile             `json:"profile,omitempty"`
	Preferences *matching.ApplicantPreferences `json:"preferences,omitempty"`
	Behaviour   *matching.ApplicantBehaviour   `json:"behaviour,omitempty"`
}

// Complete reports whether the applicant finished onboarding far enough
// to be matched. Incomplete applicants are skipped during batch runs.
func (r *ApplicantRecord) Complete() bool {
	return r.Profile != nil && r.Preferences != nil && r.Behaviour != nil
}

// MatchingData converts the record into the scoring engine's input shape.
func (r *ApplicantRecord) MatchingData() matching.ApplicantData {
	data := matching.ApplicantData{}
	if r.Profile != nil {
		data.Skills = r.Profile.Skills
	}
	if r.Preferences != nil {
		data.Preferences = *r.Preferences
	}
	if r.Behaviour != nil {
		data.Behaviour = *r.Behaviour
	}
	return data
}

// UpdatePreferencesRequest represents an applicant preferences update
// @Description Applicant job preferences
type UpdatePreferencesRequest struct {
	TargetJobTitle string `json:"target_job_title,omitempty" example:"Frontend Engineer"`
	RoleLevel      string `json:"role_level,omitempty" example:"Senior"`
	SalaryMin      int    `json:"salary_min,omitempty" example:"5000"`
	SalaryMax      int    `json:"salary_max,omitempty" example:"8000"`
	ModeOfWork     string `json:"mode_of_work,omitempty" example:"Hybrid"`
}

// Validate checks enum domains. Empty values are allowed everywhere.
func (r *UpdatePreferencesRequest) Validate() error {
	if r.RoleLevel != "" && !isValidRoleLevel(r.RoleLevel) {
		return fmt.Errorf("invalid role_level: %q", r.RoleLevel)
	}
	if r.ModeOfWork != "" && !isValidModeOfWork(r.ModeOfWork) {
		return fmt.Errorf("invalid mode_of_work: %q", r.ModeOfWork)
	}
	if r.SalaryMin < 0 || r.SalaryMax < 0 {
		return fmt.Errorf("salary bounds must be non-negative")
	}
	if r.SalaryMin > 0 && r.SalaryMax > 0 && r.SalaryMin > r.SalaryMax {
		return fmt.Errorf("salary_min must not exceed salary_max")
	}
	return nil
}

// Preferences converts the request into the scoring engine's shape.
func (r *UpdatePreferencesRequest) Preferences() matching.ApplicantPreferences {
	return matching.ApplicantPreferences{
		TargetJobTitle: r.TargetJobTitle,
		RoleLevel:      r.RoleLevel,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		ModeOfWork:     r.ModeOfWork,
	}
}

// UpdateBehaviourRequest represents the applicant behavioural quiz answers
// @Description Eight behavioural axes, each on a 1-5 scale (0 = unanswered)
type UpdateBehaviourRequest struct {
	IndependentVsTeam   int `json:"independent_vs_team,omitempty" example:"2"`
	StructuredVsOpen    int `json:"structured_vs_open,omitempty" example:"4"`
	FastVsSteady        int `json:"fast_vs_steady,omitempty" example:"3"`
	QuickVsThorough     int `json:"quick_vs_thorough,omitempty" example:"1"`
	HandsOnVsStrategic  int `json:"hands_on_vs_strategic,omitempty" example:"5"`
	FeedbackVsAutonomy  int `json:"feedback_vs_autonomy,omitempty" example:"2"`
	InnovationVsProcess int `json:"innovation_vs_process,omitempty" example:"3"`
	FlexibleVsSchedule  int `json:"flexible_vs_schedule,omitempty" example:"4"`
}

// Validate rejects answers outside the 1-5 scale. The scoring engine
// does not validate, so out-of-domain values must be stopped here.
func (r *UpdateBehaviourRequest) Validate() error {
	axes := map[string]int{
		"independent_vs_team":   r.IndependentVsTeam,
		"structured_vs_open":    r.StructuredVsOpen,
		"fast_vs_steady":        r.FastVsSteady,
		"quick_vs_thorough":     r.QuickVsThorough,
		"hands_on_vs_strategic": r.HandsOnVsStrategic,
		"feedback_vs_autonomy":  r.FeedbackVsAutonomy,
		"innovation_vs_process": r.InnovationVsProcess,
		"flexible_vs_schedule":  r.FlexibleVsSchedule,
	}
	for name, value := range axes {
		if value != 0 && (value < 1 || value > 5) {
			return fmt.Errorf("axis %s must be between 1 and 5, got %d", name, value)
		}
	}
	return nil
}

// Behaviour converts the request into the scoring engine's shape.
func (r *UpdateBehaviourRequest) Behaviour() matching.ApplicantBehaviour {
	return matching.ApplicantBehaviour{
		IndependentVsTeam:   r.IndependentVsTeam,
		StructuredVsOpen:    r.StructuredVsOpen,
		FastVsSteady:        r.FastVsSteady,
		QuickVsThorough:     r.QuickVsThorough,
		HandsOnVsStrategic:  r.HandsOnVsStrategic,
		FeedbackVsAutonomy:  r.FeedbackVsAutonomy,
		InnovationVsProcess: r.InnovationVsProcess,
		FlexibleVsSchedule:  r.FlexibleVsSchedule,
	}
}

func isValidRoleLevel(level string) bool {
	switch level {
	case matching.RoleLevelIntern, matching.RoleLevelJunior, matching.RoleLevelSenior, matching.RoleLevelLead:
		return true
	}
	return false
}

func isValidModeOfWork(mode string) bool {
	switch mode {
	case matching.ModeWorkFromHome, matching.ModeOnSite, matching.ModeHybrid:
		return true
	}
	return false
}
