package handlers

import (
	"company-directory/internal/view"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the public landing page
type HomeHandler struct {
	renderer *view.Renderer
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(renderer *view.Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

// Welcome handles GET /
// @Summary Welcome page
// @Tags pages
// @Produce html
// @Success 200 {object} view.Page "Welcome page"
// @Router / [get]
func (h *HomeHandler) Welcome(c *gin.Context) {
	h.renderer.Render(c, "Welcome", gin.H{
		"canLogin":    true,
		"canRegister": false,
	})
}
