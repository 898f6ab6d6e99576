package handlers

import (
	"company-directory/internal/service"
	"company-directory/internal/view"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard page
type DashboardHandler struct {
	service  service.DashboardServiceInterface
	renderer *view.Renderer
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface, renderer *view.Renderer) *DashboardHandler {
	return &DashboardHandler{service: service, renderer: renderer}
}

// Index handles GET /dashboard
// @Summary Dashboard
// @Description Company and employee totals. Counts are cached and may lag writes by up to the cache TTL.
// @Tags pages
// @Produce html
// @Success 200 {object} view.Page "Dashboard page with totalCompanies and totalEmployees"
// @Failure 500 {object} view.Page "Error page"
// @Router /dashboard [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	stats, err := h.service.GetStats()
	if err != nil {
		renderError(c, h.renderer, err, "load dashboard")
		return
	}

	h.renderer.Render(c, "Dashboard", gin.H{
		"totalCompanies": stats.TotalCompanies,
		"totalEmployees": stats.TotalEmployees,
	})
}
