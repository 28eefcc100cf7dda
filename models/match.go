package models

import (
	"time"

	"github.com/talentmatch/backend/matching"
)

// MatchStatus constants
const (
	MatchStatusPending            = "pending"
	MatchStatusInterviewScheduled = "interview_scheduled"
	MatchStatusRejected           = "rejected"
	MatchStatusAccepted           = "accepted"
)

// IsValidMatchStatus reports whether the status is a known lifecycle state.
func IsValidMatchStatus(status string) bool {
	switch status {
	case MatchStatusPending, MatchStatusInterviewScheduled, MatchStatusRejected, MatchStatusAccepted:
		return true
	}
	return false
}

// Match represents a scored applicant/job pair in Firestore. One
// document exists per (applicant_user_id, job_id); rescoring upserts
// the scores and summary but preserves the lifecycle status
// @Description Compatibility scores for one applicant/job pair
type Match struct {
	ID                   string     `json:"id" firestore:"-"`
	ApplicantUserID      string     `json:"applicant_user_id" firestore:"applicantUserId"`
	JobID                string     `json:"job_id" firestore:"jobId"`
	SkillsScore          int        `json:"skills_score" firestore:"skillsScore"`
	BehaviourScore       int        `json:"behaviour_score" firestore:"behaviourScore"`
	PrefsScore           int        `json:"prefs_score" firestore:"prefsScore"`
	OverallScore         int        `json:"overall_score" firestore:"overallScore"`
	AISummary            string     `json:"ai_summary,omitempty" firestore:"aiSummary"`
	Status               string     `json:"status" firestore:"status" example:"pending"`
	InterviewScheduledAt *time.Time `json:"interview_scheduled_at,omitempty" firestore:"interviewScheduledAt"`
	CreatedAt            time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt            time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// Scores returns the stored values in the scoring engine's shape,
// unchanged: persistence must round-trip exactly what was computed.
func (m *Match) Scores() matching.MatchScores {
	return matching.MatchScores{
		SkillsScore:    m.SkillsScore,
		BehaviourScore: m.BehaviourScore,
		PrefsScore:     m.PrefsScore,
		OverallScore:   m.OverallScore,
	}
}

// SetScores stores computed scores on the match record.
func (m *Match) SetScores(s matching.MatchScores) {
	m.SkillsScore = s.SkillsScore
	m.BehaviourScore = s.BehaviourScore
	m.PrefsScore = s.PrefsScore
	m.OverallScore = s.OverallScore
}

// MatchWithJob decorates a match with its job for the applicant dashboard
// @Description Match with job details for the applicant match list
type MatchWithJob struct {
	Match
	Job *Job `json:"job"`
}

// MatchWithApplicant decorates a match with applicant info for the HR dashboard
// @Description Match with applicant details for the HR job view
type MatchWithApplicant struct {
	Match
	Applicant *ApplicantRecord `json:"applicant"`
}
