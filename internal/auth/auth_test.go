package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"company-directory/internal/config"
	"company-directory/internal/database/models"
	apperrors "company-directory/internal/errors"
	"company-directory/internal/session"
	"company-directory/internal/validation"
	"company-directory/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*models.User
	err   error
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestUser(t *testing.T, email string, verified bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Name: "Test User", Email: email, PasswordHash: string(hash)}
	user.ID = uuid.New()
	if verified {
		now := time.Now()
		user.EmailVerifiedAt = &now
	}
	return user
}

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:  "test-signing-key",
		SessionTTL: time.Hour,
		Issuer:     "company-directory",
		LoginPath:  "/login",
		VerifyPath: "/verify-email",
		HomePath:   "/dashboard",
	}
}

func newTestService(t *testing.T, users ...*models.User) *AuthService {
	t.Helper()
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	service, err := NewAuthService(testConfig(), repo)
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = ""

		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := testConfig()
		cfg.SessionTTL = 0

		assert.Error(t, cfg.ValidateConfig())
	})

	t.Run("derived from application config", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{JWTSecret: "s", SessionTTLMinutes: 30, CookieSecure: true})

		assert.Equal(t, "s", cfg.JWTSecret)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.True(t, cfg.SecureCookie)
		assert.Equal(t, "/login", cfg.LoginPath)
		assert.NoError(t, cfg.ValidateConfig())
	})

	t.Run("service rejects invalid config", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{}, nil)
		assert.Error(t, err)
	})
}

func TestJWTOperations(t *testing.T) {
	user := newTestUser(t, "test@example.com", true)
	service := newTestService(t, user)

	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.True(t, claims.Verified)
	assert.Equal(t, "company-directory", claims.Issuer)

	t.Run("invalid token", func(t *testing.T) {
		_, err := service.ValidateJWT("invalid-token")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := newTestService(t)
		other.config.JWTSecret = "another-secret"
		forged, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateJWT(forged)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		issuer := newTestService(t)
		issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		stale, err := issuer.GenerateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateJWT(stale)
		assert.True(t, errors.Is(err, apperrors.ErrSessionExpired))
	})
}

func TestLogin(t *testing.T) {
	user := newTestUser(t, "test@example.com", true)
	service := newTestService(t, user)

	t.Run("valid credentials", func(t *testing.T) {
		got, token, err := service.Login("test@example.com", "password")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("email is normalized", func(t *testing.T) {
		_, _, err := service.Login("  Test@Example.com ", "password")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login("test@example.com", "wrong")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := service.Login("nobody@example.com", "password")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("repository failure", func(t *testing.T) {
		broken, err := NewAuthService(testConfig(), &fakeUserRepo{err: errors.New("connection refused")})
		require.NoError(t, err)

		_, _, err = broken.Login("test@example.com", "password")
		assert.Error(t, err)
		assert.False(t, apperrors.IsAuthentication(err))
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
}

func sessionCookieFor(t *testing.T, service *AuthService, user *models.User) *http.Cookie {
	t.Helper()
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookie, Value: token}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verified := newTestUser(t, "test@example.com", true)
	unverified := newTestUser(t, "new@example.com", false)
	revoked := newTestUser(t, "revoked@example.com", true)
	lateVerified := newTestUser(t, "late@example.com", false)
	service := newTestService(t, verified, unverified, revoked, lateVerified)
	m := NewAuthMiddleware(service)

	router := gin.New()
	managed := router.Group("/", m.RequireAuth(), m.RequireVerified())
	managed.GET("/dashboard", func(c *gin.Context) {
		email, _ := GetUserEmail(c)
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"email": email, "id": id.String()})
	})
	managed.DELETE("/employees/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/login", m.RedirectIfAuthenticated(), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/", m.OptionalAuth(), func(c *gin.Context) { c.JSON(http.StatusOK, SharedProps(c)) })

	serve := func(method, target string, cookie *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("guest is sent to login", func(t *testing.T) {
		w := serve(http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("guest delete gets see other", func(t *testing.T) {
		w := serve(http.MethodDelete, "/employees/1", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("verified user passes", func(t *testing.T) {
		w := serve(http.MethodGet, "/dashboard", sessionCookieFor(t, service, verified))
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, verified.Email, body["email"])
		assert.Equal(t, verified.ID.String(), body["id"])
	})

	t.Run("unverified user is sent to verification notice", func(t *testing.T) {
		w := serve(http.MethodGet, "/dashboard", sessionCookieFor(t, service, unverified))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/verify-email", w.Header().Get("Location"))
	})

	t.Run("verification is read from the users table", func(t *testing.T) {
		revokedCookie := sessionCookieFor(t, service, revoked)
		revoked.EmailVerifiedAt = nil

		w := serve(http.MethodGet, "/dashboard", revokedCookie)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/verify-email", w.Header().Get("Location"))

		lateCookie := sessionCookieFor(t, service, lateVerified)
		now := time.Now()
		lateVerified.EmailVerifiedAt = &now

		w = serve(http.MethodGet, "/dashboard", lateCookie)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("removed user is signed out", func(t *testing.T) {
		gone := newTestUser(t, "gone@example.com", true)

		w := serve(http.MethodGet, "/dashboard", sessionCookieFor(t, service, gone))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), SessionCookie+"=;")
	})

	t.Run("user lookup failure", func(t *testing.T) {
		broken, err := NewAuthService(testConfig(), &fakeUserRepo{err: errors.New("connection refused")})
		require.NoError(t, err)
		brokenRouter := gin.New()
		brokenRouter.GET("/dashboard", NewAuthMiddleware(broken).RequireAuth(), NewAuthMiddleware(broken).RequireVerified(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(sessionCookieFor(t, broken, verified))
		w := httptest.NewRecorder()
		brokenRouter.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("tampered cookie is cleared", func(t *testing.T) {
		w := serve(http.MethodGet, "/dashboard", &http.Cookie{Name: SessionCookie, Value: "garbage"})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), SessionCookie+"=;")
	})

	t.Run("signed-in user skips login page", func(t *testing.T) {
		w := serve(http.MethodGet, "/login", sessionCookieFor(t, service, verified))
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})

	t.Run("shared props", func(t *testing.T) {
		guest := serve(http.MethodGet, "/", nil)
		assert.JSONEq(t, `{"auth":{"user":null}}`, guest.Body.String())

		signedIn := serve(http.MethodGet, "/", sessionCookieFor(t, service, verified))
		var body struct {
			Auth struct {
				User *SessionUser `json:"user"`
			} `json:"auth"`
		}
		require.NoError(t, json.Unmarshal(signedIn.Body.Bytes(), &body))
		require.NotNil(t, body.Auth.User)
		assert.Equal(t, verified.Email, body.Auth.User.Email)
		assert.True(t, body.Auth.User.Verified)
	})
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verified := newTestUser(t, "test@example.com", true)
	unverified := newTestUser(t, "new@example.com", false)
	service := newTestService(t, verified, unverified)
	m := NewAuthMiddleware(service)
	renderer := view.NewRenderer(session.NewFlashStore("test-signing-key", false), "Company Directory", "")
	handler := NewAuthHandler(service, m, renderer, validation.New())

	router := gin.New()
	router.GET("/login", handler.LoginPage)
	router.POST("/login", handler.Login)
	router.POST("/logout", handler.Logout)
	router.GET("/verify-email", m.RequireAuth(), handler.VerifyNotice)

	postLogin := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Referer", "http://localhost/login")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	findCookie := func(w *httptest.ResponseRecorder, name string) *http.Cookie {
		for _, c := range w.Result().Cookies() {
			if c.Name == name {
				return c
			}
		}
		return nil
	}

	t.Run("login page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.Header.Set(view.HeaderPage, "true")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var page view.Page
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, "Auth/Login", page.Component)
	})

	t.Run("valid credentials start a session", func(t *testing.T) {
		w := postLogin(url.Values{"email": {"test@example.com"}, "password": {"password"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
		cookie := findCookie(w, SessionCookie)
		require.NotNil(t, cookie)

		claims, err := service.ValidateJWT(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, verified.Email, claims.Email)
	})

	t.Run("invalid credentials go back with an error", func(t *testing.T) {
		w := postLogin(url.Values{"email": {"test@example.com"}, "password": {"wrong"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Nil(t, findCookie(w, SessionCookie))
		require.NotNil(t, findCookie(w, session.FlashCookie))
	})

	t.Run("missing fields go back with validation errors", func(t *testing.T) {
		w := postLogin(url.Values{"email": {"not-an-email"}})

		assert.Equal(t, http.StatusFound, w.Code)
		flash := findCookie(w, session.FlashCookie)
		require.NotNil(t, flash)

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.Header.Set(view.HeaderPage, "true")
		req.AddCookie(flash)
		page := httptest.NewRecorder()
		router.ServeHTTP(page, req)

		var body view.Page
		require.NoError(t, json.Unmarshal(page.Body.Bytes(), &body))
		errs := body.Props["errors"].(map[string]interface{})
		assert.Equal(t, "email must be a valid email address", errs["email"])
		assert.Equal(t, "password is a required field", errs["password"])
		old := body.Props["old"].(map[string]interface{})
		assert.Equal(t, "not-an-email", old["email"])
	})

	t.Run("logout clears the session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.AddCookie(sessionCookieFor(t, service, verified))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		cookie := findCookie(w, SessionCookie)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.True(t, cookie.MaxAge < 0)
	})

	t.Run("verification notice for unverified user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/verify-email", nil)
		req.Header.Set(view.HeaderPage, "true")
		req.AddCookie(sessionCookieFor(t, service, unverified))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var page view.Page
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, "Auth/VerifyEmail", page.Component)
	})

	t.Run("verified user skips verification notice", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/verify-email", nil)
		req.AddCookie(sessionCookieFor(t, service, verified))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})
}

func TestLoadAuthConfig(t *testing.T) {
	appConfig := &config.Config{JWTSecret: "app-secret", SessionTTLMinutes: 120}

	t.Run("missing file falls back to application config", func(t *testing.T) {
		cfg, err := LoadAuthConfig(t.TempDir()+"/auth.yaml", appConfig)
		require.NoError(t, err)
		assert.Equal(t, "app-secret", cfg.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "/dashboard", cfg.HomePath)
	})

	t.Run("file overrides", func(t *testing.T) {
		path := t.TempDir() + "/auth.yaml"
		require.NoError(t, os.WriteFile(path, []byte("session_ttl: 30m\nhome_path: /companies\n"), 0o600))

		cfg, err := LoadAuthConfig(path, appConfig)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, "/companies", cfg.HomePath)
		assert.Equal(t, "/login", cfg.LoginPath)
	})

	t.Run("invalid result", func(t *testing.T) {
		_, err := LoadAuthConfig(t.TempDir()+"/auth.yaml", &config.Config{SessionTTLMinutes: 10})
		assert.Error(t, err)
	})
}
