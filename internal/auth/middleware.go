package auth

import (
	"net/http"

	apperrors "company-directory/internal/errors"
	"company-directory/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey     = "user_id"
	authClaimsKey = "auth_claims"
)

// AuthMiddleware provides cookie session middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// OptionalAuth loads the session if a valid cookie is present but doesn't require one
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.loadSession(c)
		c.Next()
	}
}

// RequireAuth sends guests to the login page
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.loadSession(c); !ok {
			redirect(c, m.service.config.LoginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireVerified sends users with an unverified email to the verification notice.
// It expects RequireAuth to run first. Verification is read from the users table,
// not from the session token.
func (m *AuthMiddleware) RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			redirect(c, m.service.config.LoginPath)
			c.Abort()
			return
		}

		user, err := m.service.CurrentUser(claims)
		if err != nil {
			if apperrors.IsNotFound(err) {
				m.ClearSessionCookie(c)
				redirect(c, m.service.config.LoginPath)
				c.Abort()
				return
			}
			logger.WithContext(c).WithError(err).Error("Failed to load session user")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		// shared props read the claims, keep them current
		claims.Verified = user.IsVerified()
		if !claims.Verified {
			redirect(c, m.service.config.VerifyPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RedirectIfAuthenticated keeps signed-in users away from guest-only pages
func (m *AuthMiddleware) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.loadSession(c); ok {
			redirect(c, m.service.config.HomePath)
			c.Abort()
			return
		}

		c.Next()
	}
}

// loadSession validates the session cookie once per request and stores the claims
func (m *AuthMiddleware) loadSession(c *gin.Context) (*AuthClaims, bool) {
	if claims, ok := GetAuthClaims(c); ok {
		return claims, true
	}

	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		return nil, false
	}

	claims, err := m.service.ValidateJWT(token)
	if err != nil {
		logger.WithContext(c).WithError(err).Debug("Discarding invalid session cookie")
		m.ClearSessionCookie(c)
		return nil, false
	}

	c.Set(userIDKey, claims.UserID)
	c.Set(logger.EmailKey, claims.Email)
	c.Set(authClaimsKey, claims)
	return claims, true
}

// SetSessionCookie stores a session token on the response
func (m *AuthMiddleware) SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(m.service.config.SessionTTL.Seconds()), "/", "", m.service.config.SecureCookie, true)
}

// ClearSessionCookie expires the session cookie
func (m *AuthMiddleware) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", m.service.config.SecureCookie, true)
}

// SharedProps exposes the signed-in user to every page as auth.user
func SharedProps(c *gin.Context) gin.H {
	var user *SessionUser
	if claims, ok := GetAuthClaims(c); ok {
		user = claims.ToSessionUser()
	}
	return gin.H{"auth": gin.H{"user": user}}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}

	idStr, ok := userID.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	return id, err == nil
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(logger.EmailKey)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

func redirect(c *gin.Context, location string) {
	status := http.StatusFound
	switch c.Request.Method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		status = http.StatusSeeOther
	}
	c.Redirect(status, location)
}
