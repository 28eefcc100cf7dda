package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentmatch/backend/auth"
	"github.com/talentmatch/backend/config"
	"github.com/talentmatch/backend/gemini"
	"github.com/talentmatch/backend/matcher"
	"github.com/talentmatch/backend/models"
	"github.com/talentmatch/backend/storage"
	"github.com/talentmatch/backend/utils"
)

// ApplicantHandler handles applicant onboarding and match retrieval
type ApplicantHandler struct {
	cfg             *config.Config
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	geminiClient    *gemini.Client
	matchEngine     *matcher.Matcher
}

// NewApplicantHandler creates a new applicant handler
func NewApplicantHandler(
	cfg *config.Config,
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	geminiClient *gemini.Client,
	matchEngine *matcher.Matcher,
) *ApplicantHandler {
	return &ApplicantHandler{
		cfg:             cfg,
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		geminiClient:    geminiClient,
		matchEngine:     matchEngine,
	}
}

// GetProfile retrieves the applicant's onboarding state
// @Summary Get applicant profile
// @Description Get the authenticated applicant's profile, preferences and behaviour
// @Tags Applicant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "Applicant profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Applicant not found"
// @Router /applicant/profile [get]
func (h *ApplicantHandler) GetProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	record, err := h.firestoreClient.GetApplicant(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Applicant not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		Applicant: record,
		Complete:  record.Complete(),
	})
}

// UpdatePreferences stores the applicant's job preferences
// @Summary Update job preferences
// @Description Set the applicant's target role, level, salary range and work mode
// @Tags Applicant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} models.MessageResponse "Preferences updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applicant/preferences [put]
func (h *ApplicantHandler) UpdatePreferences(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	var req models.UpdatePreferencesRequest
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
			Error:   "Invalid preferences",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if err := h.firestoreClient.UpdateApplicantPreferences(c.Request.Context(), claims.UserID, req.Preferences()); err != nil {
		log.Printf("[ApplicantHandler] Failed to update preferences: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update preferences",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[ApplicantHandler] Preferences updated: %s", claims.UserID)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Preferences updated"})
}

// UpdateBehaviour stores the applicant's behavioural quiz answers
// @Summary Update behavioural answers
// @Description Set the applicant's eight behavioural axis answers (1-5 scale)
// @Tags Applicant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateBehaviourRequest true "Behavioural answers"
// @Success 200 {object} models.MessageResponse "Behaviour updated"
// @Failure 400 {object} models.ErrorResponse "Answer outside the 1-5 scale"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applicant/behaviour [put]
func (h *ApplicantHandler) UpdateBehaviour(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	var req models.UpdateBehaviourRequest
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
			Error:   "Invalid behavioural answers",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if err := h.firestoreClient.UpdateApplicantBehaviour(c.Request.Context(), claims.UserID, req.Behaviour()); err != nil {
		log.Printf("[ApplicantHandler] Failed to update behaviour: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update behaviour",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[ApplicantHandler] Behaviour updated: %s", claims.UserID)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Behaviour updated"})
}

// UploadResume uploads a resume and extracts skills from it
// @Summary Upload resume
// @Description Upload a resume (PDF, DOC, DOCX), store it and extract the applicant's skills
// @Tags Applicant
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file"
// @Success 200 {object} models.ResumeUploadResponse "Resume uploaded"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applicant/resume [post]
func (h *ApplicantHandler) UploadResume(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Resume file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	data, contentType, err := utils.ReadDocument(file, header)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Failed to read resume",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	resumeURL, err := h.storageClient.UploadDocumentFromBytes(c.Request.Context(), storage.DocumentResume, claims.UserID, data, header.Filename)
	if err != nil {
		log.Printf("[ApplicantHandler] Failed to upload resume: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to upload resume",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	// Skill extraction is best-effort. The applicant can retry or edit
	// skills later without re-uploading.
	skills, err := h.geminiClient.ExtractSkillsFromResume(c.Request.Context(), data, contentType)
	if err != nil {
		log.Printf("[ApplicantHandler] Skill extraction failed: %v", err)
		skills = []string{}
	}

	if err := h.firestoreClient.UpdateApplicantResume(c.Request.Context(), claims.UserID, resumeURL, skills); err != nil {
		log.Printf("[ApplicantHandler] Failed to save resume reference: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save resume reference",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[ApplicantHandler] Resume uploaded for %s: %d skills extracted", claims.UserID, len(skills))
	c.JSON(http.StatusOK, models.ResumeUploadResponse{
		ResumeURL: resumeURL,
		Skills:    skills,
		Message:   "Resume uploaded",
	})
}

// AnalyzeCoverLetter uploads a cover letter and suggests preferences
// @Summary Analyze cover letter
// @Description Upload a cover letter, store it and suggest job preferences from its content. Suggestions are not saved until the applicant confirms them.
// @Tags Applicant
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cover_letter formData file true "Cover letter file"
// @Success 200 {object} models.CoverLetterAnalysisResponse "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applicant/cover-letter [post]
func (h *ApplicantHandler) AnalyzeCoverLetter(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	file, header, err := c.Request.FormFile("cover_letter")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Cover letter file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	data, contentType, err := utils.ReadDocument(file, header)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Failed to read cover letter",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	coverLetterURL, err := h.storageClient.UploadDocumentFromBytes(c.Request.Context(), storage.DocumentCoverLetter, claims.UserID, data, header.Filename)
	if err != nil {
		log.Printf("[ApplicantHandler] Failed to upload cover letter: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to upload cover letter",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if err := h.firestoreClient.UpdateApplicantCoverLetter(c.Request.Context(), claims.UserID, coverLetterURL); err != nil {
		log.Printf("[ApplicantHandler] Failed to save cover letter reference: %v", err)
	}

	suggested, err := h.geminiClient.ExtractPreferencesFromCoverLetter(c.Request.Context(), data, contentType)
	if err != nil {
		log.Printf("[ApplicantHandler] Cover letter analysis failed: %v", err)
		c.JSON(http.StatusOK, models.CoverLetterAnalysisResponse{
			CoverLetterURL: coverLetterURL,
			Message:        "Cover letter stored, but analysis is unavailable right now",
		})
		return
	}

	c.JSON(http.StatusOK, models.CoverLetterAnalysisResponse{
		CoverLetterURL: coverLetterURL,
		Suggested:      suggested,
		Message:        "Review the suggested preferences before saving them",
	})
}

// UploadPhoto uploads a profile photo
// @Summary Upload profile photo
// @Description Upload a profile photo (PNG, JPG)
// @Tags Applicant
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo file"
// @Success 200 {object} models.MessageResponse "Photo uploaded"
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applicant/photo [post]
func (h *ApplicantHandler) UploadPhoto(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Photo file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	photoURL, err := h.storageClient.UploadDocument(c.Request.Context(), storage.DocumentPhoto, claims.UserID, file, header)
	if err != nil {
		log.Printf("[ApplicantHandler] Failed to upload photo: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to upload photo",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if err := h.firestoreClient.UpdateApplicantPhoto(c.Request.Context(), claims.UserID, photoURL); err != nil {
		log.Printf("[ApplicantHandler] Failed to save photo reference: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save photo reference",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Photo uploaded"})
}

// GetMatches lists the applicant's matches above the confidence threshold
// @Summary List my matches
// @Description List the applicant's matches with job details, best score first. Matches below the confidence threshold are hidden.
// @Tags Applicant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApplicantMatchesResponse "Match list"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applicant/matches [get]
func (h *ApplicantHandler) GetMatches(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	matches, err := h.firestoreClient.ListMatchesByApplicant(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Printf("[ApplicantHandler] Failed to list matches: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list matches",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	result := make([]models.MatchWithJob, 0, len(matches))
	for _, match := range matches {
		if match.OverallScore < h.cfg.MatchConfidenceThreshold {
			continue
		}

		job, err := h.firestoreClient.GetJob(c.Request.Context(), match.JobID)
		if err != nil {
			log.Printf("[ApplicantHandler] Failed to load job %s: %v", match.JobID, err)
			continue
		}
		// Closed jobs stay visible only for matches already in motion.
		if job.Status != models.JobStatusOpen && match.Status == models.MatchStatusPending {
			continue
		}

		result = append(result, models.MatchWithJob{Match: match, Job: job})
	}

	c.JSON(http.StatusOK, models.ApplicantMatchesResponse{
		Matches: result,
		Total:   len(result),
	})
}

// StartMatching scores the applicant against every open job
// @Summary Run matching for me
// @Description Score the authenticated applicant against all open jobs
// @Tags Applicant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StartMatchingResponse "Run result"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Profile incomplete"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applicant/matches/run [post]
func (h *ApplicantHandler) StartMatching(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	stats, err := h.matchEngine.MatchApplicantToJobs(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Printf("[ApplicantHandler] Matching run failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Matching run failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if stats.Scored == 0 && stats.Skipped > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "Profile incomplete",
			Code:    http.StatusConflict,
			Details: "upload a resume and fill in preferences and behaviour first",
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
