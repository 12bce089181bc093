package handlers

import (
	"errors"
	"log"
	"net/http"

	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	Service *service.InterviewService
}

func NewInterviewHandler(s *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{Service: s}
}

// StartInterview creates a session with a freshly generated question set.
func (h *InterviewHandler) StartInterview(c *gin.Context) {
	var req struct {
		Role       string `json:"role" binding:"required"`
		Experience *int   `json:"experience" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	result, err := h.Service.StartInterview(c.Request.Context(), req.Role, *req.Experience)
	if err != nil {
		h.renderError(c, err)
		return
	}

	questions := make([]gin.H, len(result.Questions))
	for i, q := range result.Questions {
		questions[i] = gin.H{"id": q.ID, "question": q.Question}
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": result.Session.ID,
		"questions":  questions,
	})
}

// SubmitAnswer records one answer for a session question.
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		SessionID  string `json:"sessionId" binding:"required"`
		QuestionID string `json:"questionId" binding:"required"`
		Answer     string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if _, err := h.Service.SubmitAnswer(c.Request.Context(), req.SessionID, req.QuestionID, req.Answer); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Answer submitted successfully"})
}

// EvaluateInterview runs the batch evaluation for a completed session.
func (h *InterviewHandler) EvaluateInterview(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
		return
	}

	result, err := h.Service.EvaluateInterview(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSession returns the session with its answer/question progress.
func (h *InterviewHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
		return
	}

	progress, err := h.Service.GetSessionProgress(c.Request.Context(), sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// renderError maps service errors onto the HTTP surface. Unrecognized errors
// are logged and reported generically.
func (h *InterviewHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrSessionIncomplete),
		errors.Is(err, service.ErrDuplicateAnswer),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrSessionEvaluated):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrNothingToEvaluate):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrQuestionGeneration):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate questions"})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
