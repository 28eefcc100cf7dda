package models

import "time"

// ErrorResponse represents an error response
// @Description Error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"field X is required"`
}

// MessageResponse represents a simple confirmation response
// @Description Confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Preferences updated"`
}

// HealthResponse represents health check response
// @Description Health check response
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"talentmatch-backend"`
}

// UserResponse wraps the authenticated user's account
// @Description User account response
type UserResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message,omitempty"`
}

// ProfileResponse returns the applicant's full onboarding state
// @Description Applicant profile with preferences and behaviour
type ProfileResponse struct {
	Applicant *ApplicantRecord `json:"applicant"`
	Complete  bool             `json:"complete"`
}

// ResumeUploadResponse returns the stored resume and extracted skills
// @Description Resume upload result
type ResumeUploadResponse struct {
	ResumeURL string   `json:"resume_url"`
	Skills    []string `json:"skills"`
	Message   string   `json:"message,omitempty"`
}

// CoverLetterAnalysisResponse returns preferences suggested from a cover letter
// @Description Cover letter analysis result
type CoverLetterAnalysisResponse struct {
	CoverLetterURL string                    `json:"cover_letter_url,omitempty"`
	Suggested      *UpdatePreferencesRequest `json:"suggested_preferences,omitempty"`
	Message        string                    `json:"message,omitempty"`
}

// ApplicantMatchesResponse lists an applicant's matches above the
// confidence threshold, best first
// @Description Applicant match list
type ApplicantMatchesResponse struct {
	Matches []MatchWithJob `json:"matches"`
	Total   int            `json:"total"`
}

// JobMatchesResponse lists the scored applicants for one job, best first
// @Description HR match list for a job
type JobMatchesResponse struct {
	JobID   string               `json:"job_id"`
	Matches []MatchWithApplicant `json:"matches"`
	Total   int                  `json:"total"`
}

// JobListResponse lists jobs
// @Description Job list
type JobListResponse struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

// StartMatchingResponse summarizes a batch matching run
// @Description Batch matching run result
type StartMatchingResponse struct {
	Scored  int    `json:"scored"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
	Message string `json:"message,omitempty"`
}

// ScheduleInterviewRequest schedules an interview for a match
// @Description Interview scheduling request
type ScheduleInterviewRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required" example:"2025-07-01T10:00:00Z"`
}

// UpdateMatchStatusRequest updates a match's lifecycle status
// @Description Match status update request
type UpdateMatchStatusRequest struct {
	Status string `json:"status" binding:"required" example:"rejected"`
}
