package handlers

import (
	"strconv"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Code    string `json:"code" example:"VALIDATION_ERROR"`
	Message string `json:"message" example:"topic is required"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func respondError(c *gin.Context, err error) {
	ae := apperr.From(err)
	c.JSON(ae.Status, ErrorResponse{Error: ErrorBody{Code: ae.Code, Message: ae.Message}})
}

func userID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// idParam parses a numeric path parameter, reporting a validation error
// for anything that is not a positive integer.
func idParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid " + name)
	}
	return uint(id), nil
}
