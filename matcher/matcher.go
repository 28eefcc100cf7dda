// Package matcher runs batch scoring of applicants against jobs and
// persists the results.
package matcher

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/talentmatch/backend/matching"
	"github.com/talentmatch/backend/models"
)

// Store is the persistence surface the matcher needs.
type Store interface {
	ListApplicants(ctx context.Context) ([]*models.ApplicantRecord, error)
	ListOpenJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
	GetApplicant(ctx context.Context, userID string) (*models.ApplicantRecord, error)
	UpsertMatch(ctx context.Context, match *models.Match) error
}

// Summarizer produces a plain-language explanation for a scored pair.
type Summarizer interface {
	GenerateMatchSummary(ctx context.Context, applicant matching.ApplicantData, job matching.JobData, scores matching.MatchScores) (string, error)
}

// Matcher scores applicant/job pairs concurrently and upserts the
// results. Scores are deterministic; the AI summary is best-effort and
// never blocks a result.
type Matcher struct {
	store          Store
	summarizer     Summarizer
	maxConcurrent  int
	summaryTimeout time.Duration
}

// RunStats summarizes one batch run.
type RunStats struct {
	Scored  int
	Skipped int
	Failed  int
}

// New creates a matcher. summarizer may be nil to disable summaries.
func New(store Store, summarizer Summarizer, maxConcurrent int, summaryTimeout time.Duration) *Matcher {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Matcher{
		store:          store,
		summarizer:     summarizer,
		maxConcurrent:  maxConcurrent,
		summaryTimeout: summaryTimeout,
	}
}

type pair struct {
	applicant *models.ApplicantRecord
	job       models.Job
}

// MatchJobToApplicants scores every complete applicant against one job.
func (m *Matcher) MatchJobToApplicants(ctx context.Context, jobID string) (RunStats, error) {
	job, err := m.store.GetJob(ctx, jobID)
	if err != nil {
		return RunStats{}, err
	}

	applicants, err := m.store.ListApplicants(ctx)
	if err != nil {
		return RunStats{}, err
	}

	pairs := make([]pair, 0, len(applicants))
	skipped := 0
	for _, applicant := range applicants {
		if !applicant.Complete() {
			skipped++
			continue
		}
		pairs = append(pairs, pair{applicant: applicant, job: *job})
	}

	stats := m.scorePairs(ctx, pairs)
	stats.Skipped += skipped
	log.Printf("[Matcher] Job %s: scored=%d skipped=%d failed=%d", jobID, stats.Scored, stats.Skipped, stats.Failed)
	return stats, nil
}

// MatchApplicantToJobs scores one applicant against every open job.
func (m *Matcher) MatchApplicantToJobs(ctx context.Context, applicantUserID string) (RunStats, error) {
	applicant, err := m.store.GetApplicant(ctx, applicantUserID)
	if err != nil {
		return RunStats{}, err
	}
	if !applicant.Complete() {
		return RunStats{Skipped: 1}, nil
	}

	jobs, err := m.store.ListOpenJobs(ctx)
	if err != nil {
		return RunStats{}, err
	}

	pairs := make([]pair, 0, len(jobs))
	for _, job := range jobs {
		pairs = append(pairs, pair{applicant: applicant, job: job})
	}

	stats := m.scorePairs(ctx, pairs)
	log.Printf("[Matcher] Applicant %s: scored=%d failed=%d", applicantUserID, stats.Scored, stats.Failed)
	return stats, nil
}

// scorePairs scores pairs in parallel with a bounded worker pool.
func (m *Matcher) scorePairs(ctx context.Context, pairs []pair) RunStats {
	type outcome struct {
		failed bool
	}

	results := make(chan outcome, len(pairs))
	sem := make(chan struct{}, m.maxConcurrent)
	var wg sync.WaitGroup

	for _, p := range pairs {
		wg.Add(1)
		go func(p pair) {
			defer wg.Done()

			// Acquire semaphore
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := m.scoreOne(ctx, p); err != nil {
				log.Printf("[Matcher] Failed to score applicant %s against job %s: %v",
					p.applicant.UserID, p.job.ID, err)
				results <- outcome{failed: true}
				return
			}
			results <- outcome{}
		}(p)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var stats RunStats
	for r := range results {
		if r.failed {
			stats.Failed++
		} else {
			stats.Scored++
		}
	}
	return stats
}

// scoreOne computes scores for one pair, attaches a summary when
// available and upserts the match.
func (m *Matcher) scoreOne(ctx context.Context, p pair) error {
	applicantData := p.applicant.MatchingData()
	jobData := p.job.MatchingData()

	scores := matching.ComputeScores(applicantData, jobData)

	match := &models.Match{
		ApplicantUserID: p.applicant.UserID,
		JobID:           p.job.ID,
	}
	match.SetScores(scores)

	if m.summarizer != nil {
		summaryCtx := ctx
		var cancel context.CancelFunc
		if m.summaryTimeout > 0 {
			summaryCtx, cancel = context.WithTimeout(ctx, m.summaryTimeout)
		}
		summary, err := m.summarizer.GenerateMatchSummary(summaryCtx, applicantData, jobData, scores)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			log.Printf("[Matcher] Summary failed for applicant %s, job %s: %v", p.applicant.UserID, p.job.ID, err)
		} else {
			match.AISummary = summary
		}
	}

	return m.store.UpsertMatch(ctx, match)
}
