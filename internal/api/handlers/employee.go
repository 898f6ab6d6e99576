package handlers

import (
	apperrors "company-directory/internal/errors"
	"company-directory/internal/logger"
	"company-directory/internal/service"
	"company-directory/internal/session"
	"company-directory/internal/view"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	service  service.EmployeeServiceInterface
	renderer *view.Renderer
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service service.EmployeeServiceInterface, renderer *view.Renderer) *EmployeeHandler {
	return &EmployeeHandler{service: service, renderer: renderer}
}

// Store handles POST /employees
// @Summary Add an employee
// @Description Validate and store an employee of an existing company
// @Tags employees
// @Accept x-www-form-urlencoded,json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 302 {string} string "Redirect back with a success flash"
// @Failure 302 {string} string "Redirect back with errors"
// @Router /employees [post]
func (h *EmployeeHandler) Store(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.BackWith(c, backFallback, session.Flash{Errors: invalidRequest})
		return
	}

	employee, err := h.service.Create(&req)
	if err != nil {
		if verrs, ok := apperrors.AsValidation(err); ok {
			h.renderer.BackWith(c, backFallback, session.Flash{Errors: verrs.Map(), Old: req.Old()})
			return
		}
		renderError(c, h.renderer, err, "create employee")
		return
	}

	logger.WithContext(c).WithFields(map[string]interface{}{
		"employee_id": employee.ID.String(),
		"company_id":  employee.CompanyID.String(),
	}).Info("Employee created")
	h.renderer.BackWith(c, backFallback, session.Flash{Success: "Employee created successfully"})
}

// Destroy handles DELETE /employees/:id
// @Summary Delete an employee
// @Tags employees
// @Param id path string true "Employee ID (UUID)"
// @Success 303 {string} string "Redirect back with a success flash"
// @Failure 404 {object} view.Page "Error page"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, h.renderer)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		renderError(c, h.renderer, err, "delete employee")
		return
	}

	logger.WithContext(c).WithField("employee_id", id.String()).Info("Employee deleted")
	h.renderer.BackWith(c, backFallback, session.Flash{Success: "Employee deleted successfully"})
}
