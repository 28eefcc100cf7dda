package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/talentmatch/backend/config"
	"github.com/talentmatch/backend/matching"
	"github.com/talentmatch/backend/models"
)

const (
	usersCollection      = "users"
	applicantsCollection = "applicants"
	jobsCollection       = "jobs"
	matchesCollection    = "matches"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// ---- Users ----

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	// Check if user already exists
	_, err := docRef.Get(ctx)
	if err == nil {
		return errors.New("user with this email already exists")
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	// Create user
	_, err = docRef.Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	docRef := f.client.Collection(usersCollection).Doc(email)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser updates user data
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// ---- Applicant profiles ----

// applicantDoc is the Firestore shape of an applicant's onboarding state.
// Preferences and behaviour stay nil until the applicant submits them,
// which lets callers tell "unanswered" apart from "all defaults".
type applicantDoc struct {
	ResumeURL      string                         `firestore:"resumeUrl"`
	CoverLetterURL string                         `firestore:"coverLetterUrl"`
	PhotoURL       string                         `firestore:"photoUrl"`
	Skills         []string                       `firestore:"skills"`
	Preferences    *matching.ApplicantPreferences `firestore:"preferences"`
	Behaviour      *matching.ApplicantBehaviour   `firestore:"behaviour"`
	CreatedAt      time.Time                      `firestore:"createdAt"`
	UpdatedAt      time.Time                      `firestore:"updatedAt"`
}

// GetApplicant assembles the full applicant record for a user.
func (f *FirestoreClient) GetApplicant(ctx context.Context, userID string) (*models.ApplicantRecord, error) {
	user, err := f.GetUserByEmail(ctx, userID)
	if err != nil {
		return nil, err
	}

	record := &models.ApplicantRecord{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}

	doc, err := f.client.Collection(applicantsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return record, nil
		}
		return nil, fmt.Errorf("failed to get applicant profile: %w", err)
	}

	var data applicantDoc
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("failed to parse applicant profile: %w", err)
	}

	record.Profile = &models.ApplicantProfile{
		UserID:         userID,
		ResumeURL:      data.ResumeURL,
		CoverLetterURL: data.CoverLetterURL,
		PhotoURL:       data.PhotoURL,
		Skills:         data.Skills,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	record.Preferences = data.Preferences
	record.Behaviour = data.Behaviour

	return record, nil
}

// upsertApplicant merges fields into the applicant profile document,
// creating it on first write.
func (f *FirestoreClient) upsertApplicant(ctx context.Context, userID string, updates map[string]interface{}) error {
	docRef := f.client.Collection(applicantsCollection).Doc(userID)

	if _, err := docRef.Get(ctx); status.Code(err) == codes.NotFound {
		updates["createdAt"] = time.Now()
	}
	updates["updatedAt"] = time.Now()

	if _, err := docRef.Set(ctx, updates, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update applicant profile: %w", err)
	}
	return nil
}

// UpdateApplicantPreferences stores the applicant's job preferences.
func (f *FirestoreClient) UpdateApplicantPreferences(ctx context.Context, userID string, prefs matching.ApplicantPreferences) error {
	return f.upsertApplicant(ctx, userID, map[string]interface{}{
		"preferences": prefs,
	})
}

// UpdateApplicantBehaviour stores the applicant's behavioural quiz answers.
func (f *FirestoreClient) UpdateApplicantBehaviour(ctx context.Context, userID string, behaviour matching.ApplicantBehaviour) error {
	return f.upsertApplicant(ctx, userID, map[string]interface{}{
		"behaviour": behaviour,
	})
}

// UpdateApplicantResume stores the resume URL and the skills extracted from it.
func (f *FirestoreClient) UpdateApplicantResume(ctx context.Context, userID, resumeURL string, skills []string) error {
	return f.upsertApplicant(ctx, userID, map[string]interface{}{
		"resumeUrl": resumeURL,
		"skills":    skills,
	})
}

// UpdateApplicantCoverLetter stores the cover letter URL.
func (f *FirestoreClient) UpdateApplicantCoverLetter(ctx context.Context, userID, coverLetterURL string) error {
	return f.upsertApplicant(ctx, userID, map[string]interface{}{
		"coverLetterUrl": coverLetterURL,
	})
}

// UpdateApplicantPhoto stores the profile photo URL.
func (f *FirestoreClient) UpdateApplicantPhoto(ctx context.Context, userID, photoURL string) error {
	return f.upsertApplicant(ctx, userID, map[string]interface{}{
		"photoUrl": photoURL,
	})
}

// ListApplicants returns every applicant record, complete or not.
// Callers decide whether incomplete ones are eligible for matching.
func (f *FirestoreClient) ListApplicants(ctx context.Context) ([]*models.ApplicantRecord, error) {
	iter := f.client.Collection(usersCollection).Where("role", "==", models.RoleApplicant).Documents(ctx)
	defer iter.Stop()

	var records []*models.ApplicantRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list applicants: %w", err)
		}

		record, err := f.GetApplicant(ctx, doc.Ref.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// ---- Jobs ----

// CreateJob creates a new job posting. New jobs start open.
func (f *FirestoreClient) CreateJob(ctx context.Context, job *models.Job) error {
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	docRef, _, err := f.client.Collection(jobsCollection).Add(ctx, job)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	job.ID = docRef.ID
	return nil
}

// GetJob retrieves a job by ID
func (f *FirestoreClient) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	doc, err := f.client.Collection(jobsCollection).Doc(jobID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job models.Job
	if err := doc.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job data: %w", err)
	}

	job.ID = doc.Ref.ID
	return &job, nil
}

// ListOpenJobs returns all jobs still accepting matches.
func (f *FirestoreClient) ListOpenJobs(ctx context.Context) ([]models.Job, error) {
	return f.listJobs(ctx, f.client.Collection(jobsCollection).Where("status", "==", models.JobStatusOpen))
}

// ListJobsByHR returns the jobs posted by one HR user.
func (f *FirestoreClient) ListJobsByHR(ctx context.Context, hrUserID string) ([]models.Job, error) {
	return f.listJobs(ctx, f.client.Collection(jobsCollection).Where("hrUserId", "==", hrUserID))
}

func (f *FirestoreClient) listJobs(ctx context.Context, q firestore.Query) ([]models.Job, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var jobs []models.Job
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}

		var job models.Job
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse job data: %w", err)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// UpdateJobStatus sets a job's status to open or closed.
func (f *FirestoreClient) UpdateJobStatus(ctx context.Context, jobID, jobStatus string) error {
	_, err := f.client.Collection(jobsCollection).Doc(jobID).Set(ctx, map[string]interface{}{
		"status":    jobStatus,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	return nil
}

// ---- Matches ----

// matchDocID builds the deterministic document ID for one
// applicant/job pair so rescoring always hits the same document.
func matchDocID(applicantUserID, jobID string) string {
	sanitized := strings.ReplaceAll(applicantUserID, "/", "_")
	return sanitized + "__" + jobID
}

// UpsertMatch writes the scores and summary for an applicant/job pair.
// On first write the match starts pending; on rescoring the existing
// lifecycle status and interview time are preserved.
func (f *FirestoreClient) UpsertMatch(ctx context.Context, match *models.Match) error {
	docRef := f.client.Collection(matchesCollection).Doc(matchDocID(match.ApplicantUserID, match.JobID))

	updates := map[string]interface{}{
		"applicantUserId": match.ApplicantUserID,
		"jobId":           match.JobID,
		"skillsScore":     match.SkillsScore,
		"behaviourScore":  match.BehaviourScore,
		"prefsScore":      match.PrefsScore,
		"overallScore":    match.OverallScore,
		"updatedAt":       time.Now(),
	}
	if match.AISummary != "" {
		updates["aiSummary"] = match.AISummary
	}

	_, err := docRef.Get(ctx)
	if status.Code(err) == codes.NotFound {
		updates["status"] = models.MatchStatusPending
		updates["createdAt"] = time.Now()
	} else if err != nil {
		return fmt.Errorf("failed to check match existence: %w", err)
	}

	if _, err := docRef.Set(ctx, updates, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}

	match.ID = docRef.ID
	return nil
}

// GetMatch retrieves a match by document ID
func (f *FirestoreClient) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	doc, err := f.client.Collection(matchesCollection).Doc(matchID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.Match
	if err := doc.DataTo(&match); err != nil {
		return nil, fmt.Errorf("failed to parse match data: %w", err)
	}

	match.ID = doc.Ref.ID
	return &match, nil
}

// ListMatchesByJob returns all matches for a job, best score first.
func (f *FirestoreClient) ListMatchesByJob(ctx context.Context, jobID string) ([]models.Match, error) {
	q := f.client.Collection(matchesCollection).
		Where("jobId", "==", jobID).
		OrderBy("overallScore", firestore.Desc)
	return f.listMatches(ctx, q)
}

// ListMatchesByApplicant returns all matches for an applicant, best
// score first. Confidence filtering happens at the handler layer.
func (f *FirestoreClient) ListMatchesByApplicant(ctx context.Context, applicantUserID string) ([]models.Match, error) {
	q := f.client.Collection(matchesCollection).
		Where("applicantUserId", "==", applicantUserID).
		OrderBy("overallScore", firestore.Desc)
	return f.listMatches(ctx, q)
}

func (f *FirestoreClient) listMatches(ctx context.Context, q firestore.Query) ([]models.Match, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var matches []models.Match
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list matches: %w", err)
		}

		var match models.Match
		if err := doc.DataTo(&match); err != nil {
			return nil, fmt.Errorf("failed to parse match data: %w", err)
		}
		match.ID = doc.Ref.ID
		matches = append(matches, match)
	}

	return matches, nil
}

// UpdateMatchStatus sets a match's lifecycle status.
func (f *FirestoreClient) UpdateMatchStatus(ctx context.Context, matchID, matchStatus string) error {
	_, err := f.client.Collection(matchesCollection).Doc(matchID).Set(ctx, map[string]interface{}{
		"status":    matchStatus,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	return nil
}

// ScheduleInterview marks a match as interview_scheduled with the
// agreed time.
func (f *FirestoreClient) ScheduleInterview(ctx context.Context, matchID string, scheduledAt time.Time) error {
	_, err := f.client.Collection(matchesCollection).Doc(matchID).Set(ctx, map[string]interface{}{
		"status":               models.MatchStatusInterviewScheduled,
		"interviewScheduledAt": scheduledAt,
		"updatedAt":            time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to schedule interview: %w", err)
	}
	return nil
}
