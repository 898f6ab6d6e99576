package handlers

import (
	"errors"
	"net/http"

	apperrors "company-directory/internal/errors"
	"company-directory/internal/logger"
	"company-directory/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// backFallback is where "back" redirects go when the request has no Referer
const backFallback = "/"

// invalidRequest is reported when a body cannot be bound at all
var invalidRequest = map[string]string{"form": "The request could not be processed."}

// renderError maps service errors onto error pages
func renderError(c *gin.Context, renderer *view.Renderer, err error, action string) {
	if apperrors.IsNotFound(err) {
		renderer.Error(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	if errors.Is(err, apperrors.ErrNotImplemented) {
		renderer.Error(c, http.StatusNotImplemented, http.StatusText(http.StatusNotImplemented))
		return
	}

	logger.WithContext(c).WithError(err).Error("Failed to " + action)
	_ = c.Error(err)
	renderer.Error(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// parseID reads the :id path parameter. A malformed id is reported as not found.
func parseID(c *gin.Context, renderer *view.Renderer) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		renderer.Error(c, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return uuid.Nil, false
	}
	return id, true
}
