package handlers

import (
	"net/http"

	"github.com/Latesh-31/Adaptlearn/internal/services"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService      *services.CourseService
	progressionService *services.ProgressionService
}

func NewCourseHandler(courseService *services.CourseService, progressionService *services.ProgressionService) *CourseHandler {
	return &CourseHandler{
		courseService:      courseService,
		progressionService: progressionService,
	}
}

// List godoc
// @Summary      List the learner's courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Course
// @Router       /api/v1/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.ListCourses(userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// Get godoc
// @Summary      Get a course with its roadmap
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Course ID"
// @Success      200 {object} models.Course
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	courseID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	course, err := h.courseService.GetCourse(courseID, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// Delete godoc
// @Summary      Delete a course and its modules
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Course ID"
// @Success      200 {object} map[string]string
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	courseID, err := idParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.courseService.DeleteCourse(courseID, userID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "course deleted"})
}

// CompleteModule godoc
// @Summary      Complete the active module and unlock the next one
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Course ID"
// @Param        moduleId path int true "Module ID"
// @Success      200 {object} models.Course
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/courses/{id}/modules/{moduleId}/complete [post]
func (h *CourseHandler) CompleteModule(c *gin.Context) {
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

	course, err := h.progressionService.CompleteModule(c.Request.Context(), userID(c), courseID, moduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}
