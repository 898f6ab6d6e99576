package handlers

import (
	apperrors "company-directory/internal/errors"
	"company-directory/internal/logger"
	"company-directory/internal/service"
	"company-directory/internal/session"
	"company-directory/internal/view"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	service  service.CompanyServiceInterface
	renderer *view.Renderer
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface, renderer *view.Renderer) *CompanyHandler {
	return &CompanyHandler{service: service, renderer: renderer}
}

// Index handles GET /companies
// @Summary List companies
// @Description All companies with their employee counts
// @Tags companies
// @Produce html
// @Success 200 {object} view.Page "Companies/Index page with companies"
// @Failure 500 {object} view.Page "Error page"
// @Router /companies [get]
func (h *CompanyHandler) Index(c *gin.Context) {
	companies, err := h.service.List()
	if err != nil {
		renderError(c, h.renderer, err, "list companies")
		return
	}

	h.renderer.Render(c, "Companies/Index", gin.H{
		"companies": companies,
	})
}

// Create handles GET /companies/create
// @Summary New company form
// @Tags companies
// @Produce html
// @Success 200 {object} view.Page "Companies/Create page"
// @Router /companies/create [get]
func (h *CompanyHandler) Create(c *gin.Context) {
	h.renderer.Render(c, "Companies/Create", nil)
}

// Store handles POST /companies
// @Summary Create a company
// @Description Validate and store a company. Validation failures redirect back with errors and the submitted input.
// @Tags companies
// @Accept x-www-form-urlencoded,json
// @Param company body service.CompanyRequest true "Company data"
// @Success 302 {string} string "Redirect to /companies"
// @Failure 302 {string} string "Redirect back with errors"
// @Router /companies [post]
func (h *CompanyHandler) Store(c *gin.Context) {
	var req service.CompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.BackWith(c, backFallback, session.Flash{Errors: invalidRequest})
		return
	}

	company, err := h.service.Create(&req)
	if err != nil {
		if verrs, ok := apperrors.AsValidation(err); ok {
			h.renderer.BackWith(c, backFallback, session.Flash{Errors: verrs.Map(), Old: req.Old()})
			return
		}
		renderError(c, h.renderer, err, "create company")
		return
	}

	logger.WithContext(c).WithField("company_id", company.ID.String()).Info("Company created")
	h.renderer.Redirect(c, "/companies")
}

// Show handles GET /companies/:id
// @Summary Show a company
// @Description Not implemented
// @Tags companies
// @Param id path string true "Company ID (UUID)"
// @Failure 501 {object} view.Page "Error page"
// @Router /companies/{id} [get]
func (h *CompanyHandler) Show(c *gin.Context) {
	renderError(c, h.renderer, apperrors.ErrNotImplemented, "")
}

// Edit handles GET /companies/:id/edit
// @Summary Edit company form
// @Description The company with its employees
// @Tags companies
// @Produce html
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} view.Page "Companies/Edit page with company"
// @Failure 404 {object} view.Page "Error page"
// @Router /companies/{id}/edit [get]
func (h *CompanyHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, h.renderer)
	if !ok {
		return
	}

	company, err := h.service.GetWithEmployees(id)
	if err != nil {
		renderError(c, h.renderer, err, "load company")
		return
	}

	h.renderer.Render(c, "Companies/Edit", gin.H{
		"company": company,
	})
}

// Update handles PUT/PATCH /companies/:id
// @Summary Update a company
// @Description Validate and apply changes. Name, ABN and email may keep their current values.
// @Tags companies
// @Accept x-www-form-urlencoded,json
// @Param id path string true "Company ID (UUID)"
// @Param company body service.CompanyRequest true "Company data"
// @Success 303 {string} string "Redirect back with a success flash"
// @Failure 303 {string} string "Redirect back with errors"
// @Failure 404 {object} view.Page "Error page"
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.renderer)
	if !ok {
		return
	}

	var req service.CompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.BackWith(c, backFallback, session.Flash{Errors: invalidRequest})
		return
	}

	if _, err := h.service.Update(id, &req); err != nil {
		if verrs, ok := apperrors.AsValidation(err); ok {
			h.renderer.BackWith(c, backFallback, session.Flash{Errors: verrs.Map(), Old: req.Old()})
			return
		}
		renderError(c, h.renderer, err, "update company")
		return
	}

	logger.WithContext(c).WithField("company_id", id.String()).Info("Company updated")
	h.renderer.BackWith(c, backFallback, session.Flash{Success: "Company updated successfully"})
}

// Destroy handles DELETE /companies/:id
// @Summary Delete a company
// @Description Not implemented
// @Tags companies
// @Param id path string true "Company ID (UUID)"
// @Failure 501 {object} view.Page "Error page"
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Destroy(c *gin.Context) {
	renderError(c, h.renderer, apperrors.ErrNotImplemented, "")
}
