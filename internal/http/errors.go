package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"amazing-hunting/internal/domain"
)

const errInvalidBody = "invalid request body"

// respondError maps service errors onto status codes. Only unexpected
// failures are logged; their details stay out of the response body.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSkillNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrSkillNotFound.Error()})
	case errors.Is(err, domain.ErrVacancyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrVacancyNotFound.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrUserNotFound.Error()})
	default:
		h.log(c).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// badRequest keeps binding details in the log; they name Go types.
func (h *Handler) badRequest(c *gin.Context, err error) {
	h.log(c).WithError(err).Warn("invalid request body")
	c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
}
