package handlers

import (
	"net/http"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/models"
	"github.com/Latesh-31/Adaptlearn/internal/services"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	assessmentService *services.AssessmentService
	plannerService    *services.PlannerService
}

func NewAssessmentHandler(assessmentService *services.AssessmentService, plannerService *services.PlannerService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		plannerService:    plannerService,
	}
}

type GenerateAssessmentRequest struct {
	Topic string `json:"topic" binding:"required" example:"Linear Algebra"`
}

type GradeRequest struct {
	Answers []string `json:"answers" binding:"required"`
}

type GradeResponse struct {
	Score      int            `json:"score" example:"80"`
	Analysis   string         `json:"analysis"`
	Weaknesses []string       `json:"weaknesses"`
	Course     *models.Course `json:"course"`
}

// Generate godoc
// @Summary      Generate a diagnostic assessment
// @Description  Create a 5-question multiple-choice quiz for a topic. Correct answers are never exposed.
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateAssessmentRequest true "Assessment topic"
// @Success      201 {object} services.QuizResult
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/assessments [post]
func (h *AssessmentHandler) Generate(c *gin.Context) {
	var req GenerateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	quiz, err := h.assessmentService.GenerateQuiz(c.Request.Context(), userID(c), req.Topic)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// Grade godoc
// @Summary      Submit answers and receive a personalized course
// @Description  Grades the assessment, analyzes weaknesses, and plans a 6-module roadmap in one step.
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Assessment ID"
// @Param        request body GradeRequest true "Answers in question order"
// @Success      200 {object} GradeResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/assessments/{id}/grade [post]
func (h *AssessmentHandler) Grade(c *gin.Context) {
	assessmentID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	assessment, err := h.assessmentService.GradeQuiz(c.Request.Context(), userID(c), assessmentID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	course, err := h.plannerService.PlanRoadmap(c.Request.Context(), assessment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, GradeResponse{
		Score:      *assessment.Score,
		Analysis:   assessment.Analysis,
		Weaknesses: assessment.Weaknesses,
		Course:     course,
	})
}
