package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentmatch/backend/auth"
	"github.com/talentmatch/backend/config"
	"github.com/talentmatch/backend/matcher"
	"github.com/talentmatch/backend/models"
	"github.com/talentmatch/backend/storage"
)

// HRHandler handles job postings and match management for HR users
type HRHandler struct {
	cfg             *config.Config
	firestoreClient *storage.FirestoreClient
	matchEngine     *matcher.Matcher
}

// NewHRHandler creates a new HR handler
func NewHRHandler(
	cfg *config.Config,
	firestoreClient *storage.FirestoreClient,
	matchEngine *matcher.Matcher,
) *HRHandler {
	return &HRHandler{
		cfg:             cfg,
		firestoreClient: firestoreClient,
		matchEngine:     matchEngine,
	}
}

// CreateJob creates a new job posting
// @Summary Create job
// @Description Create a job posting with its preferences and behavioural expectations
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateJobRequest true "Job"
// @Success 201 {object} models.Job "Job created"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/jobs [post]
func (h *HRHandler) CreateJob(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid job",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	job := &models.Job{
		HRUserID:    claims.UserID,
		Title:       req.Title,
		JDText:      req.JDText,
		JDURL:       req.JDURL,
		Preferences: req.Preferences,
		Behaviour:   req.Behaviour,
	}

	if err := h.firestoreClient.CreateJob(c.Request.Context(), job); err != nil {
		log.Printf("[HRHandler] Failed to create job: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create job",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[HRHandler] Job created: %s (%s)", job.ID, job.Title)
	c.JSON(http.StatusCreated, job)
}

// ListJobs lists the HR user's job postings
// @Summary List my jobs
// @Description List all jobs posted by the authenticated HR user
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.JobListResponse "Job list"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/jobs [get]
func (h *HRHandler) ListJobs(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	jobs, err := h.firestoreClient.ListJobsByHR(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Printf("[HRHandler] Failed to list jobs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list jobs",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.JobListResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

// UpdateJobStatus opens or closes a job
// @Summary Update job status
// @Description Set a job's status to open or closed
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body models.UpdateMatchStatusRequest true "Status"
// @Success 200 {object} models.MessageResponse "Status updated"
// @Failure 400 {object} models.ErrorResponse "Invalid status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the job owner"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /hr/jobs/{id}/status [patch]
func (h *HRHandler) UpdateJobStatus(c *gin.Context) {
	job, ok := h.ownedJob(c)
	if !ok {
		return
	}

	var req models.UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	if req.Status != models.JobStatusOpen && req.Status != models.JobStatusClosed {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid status",
			Code:    http.StatusBadRequest,
			Details: "status must be open or closed",
		})
		return
	}

	if err := h.firestoreClient.UpdateJobStatus(c.Request.Context(), job.ID, req.Status); err != nil {
		log.Printf("[HRHandler] Failed to update job status: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update job status",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Job status updated"})
}

// GetJobMatches lists scored applicants for a job
// @Summary List job matches
// @Description List all scored applicants for one of the HR user's jobs, best score first
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.JobMatchesResponse "Match list"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the job owner"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /hr/jobs/{id}/matches [get]
func (h *HRHandler) GetJobMatches(c *gin.Context) {
	job, ok := h.ownedJob(c)
	if !ok {
		return
	}

	matches, err := h.firestoreClient.ListMatchesByJob(c.Request.Context(), job.ID)
	if err != nil {
		log.Printf("[HRHandler] Failed to list matches: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list matches",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	result := make([]models.MatchWithApplicant, 0, len(matches))
	for _, match := range matches {
		applicant, err := h.firestoreClient.GetApplicant(c.Request.Context(), match.ApplicantUserID)
		if err != nil {
			log.Printf("[HRHandler] Failed to load applicant %s: %v", match.ApplicantUserID, err)
			continue
		}
		result = append(result, models.MatchWithApplicant{Match: match, Applicant: applicant})
	}

	c.JSON(http.StatusOK, models.JobMatchesResponse{
		JobID:   job.ID,
		Matches: result,
		Total:   len(result),
	})
}

// StartMatching scores all applicants against a job
// @Summary Run matching for a job
// @Description Score every complete applicant against one of the HR user's jobs
// @Tags HR
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.StartMatchingResponse "Run result"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the job owner"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /hr/jobs/{id}/matches/run [post]
func (h *HRHandler) StartMatching(c *gin.Context) {
	job, ok := h.ownedJob(c)
	if !ok {
		return
	}

	stats, err := h.matchEngine.MatchJobToApplicants(c.Request.Context(), job.ID)
	if err != nil {
		log.Printf("[HRHandler] Matching run failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Matching run failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.StartMatchingResponse{
		Scored:  stats.Scored,
		Skipped: stats.Skipped,
		Failed:  stats.Failed,
		Message: "Matching complete",
	})
}

// ScheduleInterview schedules an interview for a match
// @Summary Schedule interview
// @Description Schedule an interview for a match. The match's overall score must meet the interview threshold.
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body models.ScheduleInterviewRequest true "Schedule"
// @Success 200 {object} models.MessageResponse "Interview scheduled"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the job owner"
// @Failure 404 {object} models.ErrorResponse "Match not found"
// @Failure 422 {object} models.ErrorResponse "Score below interview threshold"
// @Router /hr/matches/{id}/interview [post]
func (h *HRHandler) ScheduleInterview(c *gin.Context) {
	match, ok := h.ownedMatch(c)
	if !ok {
		return
	}

	var req models.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	// Interview eligibility is enforced here, not in the UI.
	if match.OverallScore < h.cfg.InterviewScoreThreshold {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: "Score below interview threshold",
			Code:  http.StatusUnprocessableEntity,
			Details: fmt.Sprintf("overall score %d is below the required %d",
				match.OverallScore, h.cfg.InterviewScoreThreshold),
		})
		return
	}

	if err := h.firestoreClient.ScheduleInterview(c.Request.Context(), match.ID, req.ScheduledAt); err != nil {
		log.Printf("[HRHandler] Failed to schedule interview: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to schedule interview",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[HRHandler] Interview scheduled for match %s at %s", match.ID, req.ScheduledAt)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Interview scheduled"})
}

// UpdateMatchStatus updates a match's lifecycle status
// @Summary Update match status
// @Description Set a match's status (pending, interview_scheduled, rejected, accepted)
// @Tags HR
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body models.UpdateMatchStatusRequest true "Status"
// @Success 200 {object} models.MessageResponse "Status updated"
// @Failure 400 {object} models.ErrorResponse "Invalid status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Not the job owner"
// @Failure 404 {object} models.ErrorResponse "Match not found"
// @Router /hr/matches/{id}/status [patch]
func (h *HRHandler) UpdateMatchStatus(c *gin.Context) {
	match, ok := h.ownedMatch(c)
	if !ok {
		return
	}

	var req models.UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	if !models.IsValidMatchStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid status",
			Code:    http.StatusBadRequest,
			Details: "status must be pending, interview_scheduled, rejected or accepted",
		})
		return
	}

	if err := h.firestoreClient.UpdateMatchStatus(c.Request.Context(), match.ID, req.Status); err != nil {
		log.Printf("[HRHandler] Failed to update match status: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update match status",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Match status updated"})
}

// ownedJob loads the job from the path and verifies the caller owns it.
func (h *HRHandler) ownedJob(c *gin.Context) (*models.Job, bool) {
	claims := auth.GetAuthClaims(c)
	jobID := c.Param("id")

	job, err := h.firestoreClient.GetJob(c.Request.Context(), jobID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, storage.ErrNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, models.ErrorResponse{
			Error: "Job not found",
			Code:  code,
		})
		return nil, false
	}

	if job.HRUserID != claims.UserID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "You do not own this job",
			Code:  http.StatusForbidden,
		})
		return nil, false
	}

	return job, true
}

// ownedMatch loads the match from the path and verifies the caller
// owns the job it belongs to.
func (h *HRHandler) ownedMatch(c *gin.Context) (*models.Match, bool) {
	claims := auth.GetAuthClaims(c)
	matchID := c.Param("id")

	match, err := h.firestoreClient.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, storage.ErrNotFound) {
			code = http.StatusNotFound
		}
		c.JSON(code, models.ErrorResponse{
			Error: "Match not found",
			Code:  code,
		})
		return nil, false
	}

	job, err := h.firestoreClient.GetJob(c.Request.Context(), match.JobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load job for match",
			Code:  http.StatusInternalServerError,
		})
		return nil, false
	}
	if job.HRUserID != claims.UserID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error: "You do not own this match",
			Code:  http.StatusForbidden,
		})
		return nil, false
	}

	return match, true
}

// HealthCheck returns service health
// @Summary Health check
// @Description Returns service health status
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Service healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: "talentmatch-backend",
	})
}
