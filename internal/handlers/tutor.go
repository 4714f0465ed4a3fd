package handlers

import (
	"net/http"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/services"

	"github.com/gin-gonic/gin"
)

type TutorHandler struct {
	tutorService *services.TutorService
}

func NewTutorHandler(tutorService *services.TutorService) *TutorHandler {
	return &TutorHandler{tutorService: tutorService}
}

type AskRequest struct {
	Question string `json:"question" binding:"required" example:"What is an eigenvalue?"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

// Content godoc
// @Summary      Get or generate module learning content
// @Description  Content is generated once per module and cached; later calls return the stored text.
// @Tags         tutor
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Course ID"
// @Param        moduleId path int true "Module ID"
// @Success      200 {object} models.Module
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/courses/{id}/modules/{moduleId}/content [post]
func (h *TutorHandler) Content(c *gin.Context) {
	courseID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	moduleID, err := idParam(c, "moduleId")
	if err != nil {
		respondError(c, err)
		return
	}

	module, err := h.tutorService.GenerateModuleContent(c.Request.Context(), userID(c), courseID, moduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

// Ask godoc
// @Summary      Ask the tutor a question about a module
// @Description  Stateless chat scoped to an unlocked module. Nothing from the conversation is stored.
// @Tags         tutor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Course ID"
// @Param        moduleId path int true "Module ID"
// @Param        request body AskRequest true "Learner question"
// @Success      200 {object} AskResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /api/v1/courses/{id}/modules/{moduleId}/tutor [post]
func (h *TutorHandler) Ask(c *gin.Context) {
	courseID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	moduleID, err := idParam(c, "moduleId")
	if err != nil {
		respondError(c, err)
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(err.Error()))
		return
	}

	answer, err := h.tutorService.AskTutor(c.Request.Context(), userID(c), courseID, moduleID, req.Question)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AskResponse{Answer: answer})
}
