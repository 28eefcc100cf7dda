package models

import (
	"fmt"
	"time"

	"github.com/talentmatch/backend/matching"
)

// JobStatus constants
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Job represents a job posting in Firestore, including the preferences
// and behavioural expectations the HR user set for it
// @Description Job posting with matching inputs
type Job struct {
	ID          string                  `json:"id" firestore:"-"`
	HRUserID    string                  `json:"hr_user_id" firestore:"hrUserId"`
	Title       string                  `json:"title" firestore:"title" example:"Frontend Engineer"`
	JDText      string                  `json:"jd_text,omitempty" firestore:"jdText"`
	JDURL       string                  `json:"jd_url,omitempty" firestore:"jdUrl"`
	Status      string                  `json:"status" firestore:"status" example:"open"`
	Preferences matching.JobPreferences `json:"preferences" firestore:"preferences"`
	Behaviour   matching.JobBehaviour   `json:"behaviour" firestore:"behaviour"`
	CreatedAt   time.Time               `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time               `json:"updated_at" firestore:"updatedAt"`
}

// MatchingData converts the job into the scoring engine's input shape.
func (j *Job) MatchingData() matching.JobData {
	return matching.JobData{
		Title:       j.Title,
		JDText:      j.JDText,
		Preferences: j.Preferences,
		Behaviour:   j.Behaviour,
	}
}

// CreateJobRequest represents a job creation request
// @Description Job creation request with preferences and behaviour
type CreateJobRequest struct {
	Title       string                  `json:"title" binding:"required" example:"Frontend Engineer"`
	JDText      string                  `json:"jd_text,omitempty"`
	JDURL       string                  `json:"jd_url,omitempty"`
	Preferences matching.JobPreferences `json:"preferences"`
	Behaviour   matching.JobBehaviour   `json:"behaviour"`
}

// Validate checks enum domains on the job's preferences.
func (r *CreateJobRequest) Validate() error {
	if r.Preferences.RoleLevel != "" && !isValidRoleLevel(r.Preferences.RoleLevel) {
		return fmt.Errorf("invalid role_level: %q", r.Preferences.RoleLevel)
	}
	if r.Preferences.ModeOfWork != "" && !isValidModeOfWork(r.Preferences.ModeOfWork) {
		return fmt.Errorf("invalid mode_of_work: %q", r.Preferences.ModeOfWork)
	}
	if r.Preferences.SalaryMin > 0 && r.Preferences.SalaryMax > 0 && r.Preferences.SalaryMin > r.Preferences.SalaryMax {
		return fmt.Errorf("salary_min must not exceed salary_max")
	}
	return nil
}
