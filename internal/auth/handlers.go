package auth

import (
	"net/http"

	apperrors "company-directory/internal/errors"
	"company-directory/internal/logger"
	"company-directory/internal/session"
	"company-directory/internal/validation"
	"company-directory/internal/view"

	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"test@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"password"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service    *AuthService
	middleware *AuthMiddleware
	renderer   *view.Renderer
	validator  *validation.Validator
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, middleware *AuthMiddleware, renderer *view.Renderer, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{
		service:    service,
		middleware: middleware,
		renderer:   renderer,
		validator:  validator,
	}
}

// LoginPage handles GET /login
// @Summary Login page
// @Description Render the login form
// @Tags authentication
// @Produce html
// @Success 200 {object} view.Page "Auth/Login page"
// @Router /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.renderer.Render(c, "Auth/Login", gin.H{
		"canResetPassword": false,
	})
}

// Login handles POST /login
// @Summary Sign in
// @Description Check credentials and start a session
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 302 {string} string "Redirect to the dashboard"
// @Failure 302 {string} string "Redirect back with errors"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.BackWith(c, h.service.config.LoginPath, session.Flash{
			Errors: map[string]string{"email": "The request could not be processed."},
		})
		return
	}

	old := map[string]string{"email": req.Email}

	if verrs := h.validator.Struct(&req); verrs != nil {
		h.renderer.BackWith(c, h.service.config.LoginPath, session.Flash{Errors: verrs.Map(), Old: old})
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			logger.WithContext(c).WithField("email", req.Email).Info("Failed login attempt")
			h.renderer.BackWith(c, h.service.config.LoginPath, session.Flash{
				Errors: map[string]string{"email": err.Error()},
				Old:    old,
			})
			return
		}
		logger.WithContext(c).WithError(err).Error("Login failed")
		h.renderer.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	h.middleware.SetSessionCookie(c, token)
	logger.WithContext(c).WithField("user_id", user.ID.String()).Info("User signed in")
	h.renderer.Redirect(c, h.service.config.HomePath)
}

// Logout handles POST /logout
// @Summary Sign out
// @Description End the current session
// @Tags authentication
// @Success 302 {string} string "Redirect to the welcome page"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.middleware.ClearSessionCookie(c)
	h.renderer.Redirect(c, "/")
}

// VerifyNotice handles GET /verify-email
// @Summary Email verification notice
// @Description Tell a signed-in user with an unverified email to verify it
// @Tags authentication
// @Produce html
// @Success 200 {object} view.Page "Auth/VerifyEmail page"
// @Success 302 {string} string "Already verified, redirect to the dashboard"
// @Router /verify-email [get]
func (h *AuthHandler) VerifyNotice(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		h.renderer.Redirect(c, h.service.config.LoginPath)
		return
	}

	user, err := h.service.CurrentUser(claims)
	if err != nil {
		if apperrors.IsNotFound(err) {
			h.middleware.ClearSessionCookie(c)
			h.renderer.Redirect(c, h.service.config.LoginPath)
			return
		}
		logger.WithContext(c).WithError(err).Error("Failed to load session user")
		h.renderer.Error(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	if user.IsVerified() {
		h.renderer.Redirect(c, h.service.config.HomePath)
		return
	}

	h.renderer.Render(c, "Auth/VerifyEmail", gin.H{
		"email": user.Email,
	})
}
