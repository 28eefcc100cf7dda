package matcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentmatch/backend/matching"
	"github.com/talentmatch/backend/models"
)

type fakeStore struct {
	mu         sync.Mutex
	applicants []*models.ApplicantRecord
	jobs       []models.Job
	upserted   []models.Match
	upsertErr  error
}

func (s *fakeStore) ListApplicants(ctx context.Context) ([]*models.ApplicantRecord, error) {
	return s.applicants, nil
}

func (s *fakeStore) ListOpenJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobs, nil
}

func (s *fakeStore) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	for i := range s.jobs {
		if s.jobs[i].ID == jobID {
			return &s.jobs[i], nil
		}
	}
	return nil, errors.New("job not found")
}

func (s *fakeStore) GetApplicant(ctx context.Context, userID string) (*models.ApplicantRecord, error) {
	for _, a := range s.applicants {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, errors.New("applicant not found")
}

func (s *fakeStore) UpsertMatch(ctx context.Context, match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, *match)
	return nil
}

type fakeSummarizer struct {
	summary string
	err     error
	delay   time.Duration
}

func (f *fakeSummarizer) GenerateMatchSummary(ctx context.Context, applicant matching.ApplicantData, job matching.JobData, scores matching.MatchScores) (string, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.summary, f.err
}

func completeApplicant(userID string) *models.ApplicantRecord {
	return &models.ApplicantRecord{
		UserID:   userID,
		Email:    userID,
		FullName: "Test Applicant",
		Profile: &models.ApplicantProfile{
			Skills: []string{"React", "TypeScript"},
		},
		Preferences: &matching.ApplicantPreferences{
			RoleLevel:  matching.RoleLevelJunior,
			ModeOfWork: matching.ModeHybrid,
		},
		Behaviour: &matching.ApplicantBehaviour{IndependentVsTeam: 3},
	}
}

func openJob(id string) models.Job {
	return models.Job{
		ID:     id,
		Title:  "Frontend Engineer",
		JDText: "React and TypeScript required",
		Status: models.JobStatusOpen,
	}
}

func TestMatchJobToApplicantsSkipsIncomplete(t *testing.T) {
	store := &fakeStore{
		applicants: []*models.ApplicantRecord{
			completeApplicant("a@example.com"),
			{UserID: "incomplete@example.com"},
		},
		jobs: []models.Job{openJob("job-1")},
	}

	m := New(store, nil, 2, 0)
	stats, err := m.MatchJobToApplicants(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Scored)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Failed)
	require.Len(t, store.upserted, 1)
	assert.Equal(t, "a@example.com", store.upserted[0].ApplicantUserID)
	assert.Equal(t, "job-1", store.upserted[0].JobID)
}

func TestMatchJobToApplicantsScoresMatchEngine(t *testing.T) {
	applicant := completeApplicant("a@example.com")
	job := openJob("job-1")
	store := &fakeStore{
		applicants: []*models.ApplicantRecord{applicant},
		jobs:       []models.Job{job},
	}

	m := New(store, nil, 2, 0)
	_, err := m.MatchJobToApplicants(context.Background(), "job-1")
	require.NoError(t, err)

	want := matching.ComputeScores(applicant.MatchingData(), job.MatchingData())
	require.Len(t, store.upserted, 1)
	assert.Equal(t, want, store.upserted[0].Scores())
}

func TestMatchApplicantToJobsCoversAllOpenJobs(t *testing.T) {
	store := &fakeStore{
		applicants: []*models.ApplicantRecord{completeApplicant("a@example.com")},
		jobs:       []models.Job{openJob("job-1"), openJob("job-2"), openJob("job-3")},
	}

	m := New(store, nil, 2, 0)
	stats, err := m.MatchApplicantToJobs(context.Background(), "a@example.com")

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Scored)
	assert.Len(t, store.upserted, 3)
}

func TestMatchApplicantToJobsIncompleteApplicant(t *testing.T) {
	store := &fakeStore{
		applicants: []*models.ApplicantRecord{{UserID: "a@example.com"}},
		jobs:       []models.Job{openJob("job-1")},
	}

	m := New(store, nil, 2, 0)
	stats, err := m.MatchApplicantToJobs(context.Background(), "a@example.com")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Empty(t, store.upserted)
}

func TestSummaryAttachedWhenAvailable(t *testing.T) {
	store := &fakeStore{
		applicants: []*models.ApplicantRecord{completeApplicant("a@example.com")},
		jobs:       []models.Job{openJob("job-1")},
	}
	summarizer := &fakeSummarizer{summary: "A solid fit."}

	m := New(store, summarizer, 2, time.Second)
	_, err := m.MatchJobToApplicants(context.Background(), "job-1")

	require.NoError(t, err)
	require.Len(t, store.upserted, 1)
	assert.Equal(t, "A solid fit.", store.upserted[0].AISummary)
}

func TestSummaryFailureDoesNotBlockScores(t *testing.T) {
	store := &fakeStore{
		applicants: []*models.ApplicantRecord{completeApplicant("a@example.com")},
		jobs:       []models.Job{openJob("job-1")},
	}
	summarizer := &fakeSummarizer{err: errors.New("model unavailable")}

	m := New(store, summarizer, 2, time.Second)
	stats, err := m.MatchJobToApplicants(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Scored)
	require.Len(t, store.upserted, 1)
	assert.Empty(t, store.upserted[0].AISummary)
	assert.GreaterOrEqual(t, store.upserted[0].OverallScore, 0)
}

func TestSummaryTimeout(t *testing.T) {
	store := &fakeStore{
		applicants: []*models.ApplicantRecord{completeApplicant("a@example.com")},
		jobs:       []models.Job{openJob("job-1")},
	}
	summarizer := &fakeSummarizer{summary: "too late", delay: 200 * time.Millisecond}

	m := New(store, summarizer, 2, 10*time.Millisecond)
	stats, err := m.MatchJobToApplicants(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Scored)
	require.Len(t, store.upserted, 1)
	assert.Empty(t, store.upserted[0].AISummary)
}

func TestUpsertFailureCountsAsFailed(t *testing.T) {
	store := &fakeStore{
		applicants: []*models.ApplicantRecord{completeApplicant("a@example.com")},
		jobs:       []models.Job{openJob("job-1")},
		upsertErr:  errors.New("firestore down"),
	}

	m := New(store, nil, 2, 0)
	stats, err := m.MatchJobToApplicants(context.Background(), "job-1")

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Scored)
	assert.Equal(t, 1, stats.Failed)
}
