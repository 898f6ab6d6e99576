package view

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"company-directory/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer() *Renderer {
	r := NewRenderer(session.NewFlashStore("test-secret", false), "Company Directory", "v1")
	r.Share(func(c *gin.Context) gin.H {
		return gin.H{"auth": gin.H{"user": nil}}
	})
	return r
}

func serve(router *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRenderPageRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRenderer()
	router := gin.New()
	router.GET("/dashboard", func(c *gin.Context) {
		r.Render(c, "Dashboard", gin.H{"totalCompanies": 4})
	})

	recorder := serve(router, http.MethodGet, "/dashboard", map[string]string{HeaderPage: "true"})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "true", recorder.Header().Get(HeaderPage))

	var page Page
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Equal(t, "Dashboard", page.Component)
	assert.Equal(t, "/dashboard", page.URL)
	assert.Equal(t, "v1", page.Version)
	assert.EqualValues(t, 4, page.Props["totalCompanies"])
	assert.Contains(t, page.Props, "auth")
	assert.Contains(t, page.Props, "errors")
	assert.Contains(t, page.Props, "flash")
}

func TestRenderHTMLShell(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRenderer()
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		r.Render(c, "Welcome", nil)
	})

	recorder := serve(router, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.HasPrefix(recorder.Header().Get("Content-Type"), "text/html"))
	body := recorder.Body.String()
	assert.Contains(t, body, `<title>Company Directory</title>`)
	assert.Contains(t, body, `data-page="{&#34;component&#34;:&#34;Welcome&#34;`)
}

func TestRenderVersionMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRenderer()
	router := gin.New()
	router.GET("/companies", func(c *gin.Context) {
		r.Render(c, "Companies/Index", nil)
	})

	recorder := serve(router, http.MethodGet, "/companies", map[string]string{HeaderPage: "true", HeaderVersion: "old"})

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "/companies", recorder.Header().Get(HeaderLocation))
}

func TestRedirectStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRenderer()
	router := gin.New()
	handler := func(c *gin.Context) { r.Redirect(c, "/companies") }
	router.POST("/x", handler)
	router.PUT("/x", handler)
	router.PATCH("/x", handler)
	router.DELETE("/x", handler)

	assert.Equal(t, http.StatusFound, serve(router, http.MethodPost, "/x", nil).Code)
	assert.Equal(t, http.StatusSeeOther, serve(router, http.MethodPut, "/x", nil).Code)
	assert.Equal(t, http.StatusSeeOther, serve(router, http.MethodPatch, "/x", nil).Code)
	assert.Equal(t, http.StatusSeeOther, serve(router, http.MethodDelete, "/x", nil).Code)
}

func TestBackUsesRefererPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRenderer()
	router := gin.New()
	router.POST("/employees", func(c *gin.Context) { r.Back(c, "/companies") })

	withReferer := serve(router, http.MethodPost, "/employees", map[string]string{"Referer": "https://evil.example.com/companies/1/edit?tab=staff"})
	assert.Equal(t, "/companies/1/edit?tab=staff", withReferer.Header().Get("Location"))

	withoutReferer := serve(router, http.MethodPost, "/employees", nil)
	assert.Equal(t, "/companies", withoutReferer.Header().Get("Location"))
}

func TestBackRejectsOffHostPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRenderer()
	router := gin.New()
	router.POST("/login", func(c *gin.Context) { r.Back(c, "/") })

	for _, referer := range []string{
		"https://app.example.com//evil.example.net/phish",
		"https://app.example.com/\\evil.example.net/phish",
		"relative/path",
	} {
		recorder := serve(router, http.MethodPost, "/login", map[string]string{"Referer": referer})
		assert.Equal(t, "/", recorder.Header().Get("Location"), referer)
	}
}

func TestFlashIsSharedOnNextPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRenderer()
	router := gin.New()
	router.POST("/employees", func(c *gin.Context) {
		r.BackWith(c, "/companies", session.Flash{Success: "Employee created successfully"})
	})
	router.GET("/companies", func(c *gin.Context) {
		r.Render(c, "Companies/Index", nil)
	})

	first := serve(router, http.MethodPost, "/employees", nil)
	require.Equal(t, http.StatusFound, first.Code)

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	req.Header.Set(HeaderPage, "true")
	for _, c := range first.Result().Cookies() {
		req.AddCookie(c)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var page Page
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	flash := page.Props["flash"].(map[string]interface{})
	assert.Equal(t, "Employee created successfully", flash["success"])
}

func TestErrorPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRenderer()
	router := gin.New()
	router.GET("/companies/:id", func(c *gin.Context) { r.Error(c, http.StatusNotImplemented, "Not implemented") })

	recorder := serve(router, http.MethodGet, "/companies/abc", map[string]string{HeaderPage: "true"})

	assert.Equal(t, http.StatusNotImplemented, recorder.Code)
	var page Page
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Equal(t, "Error", page.Component)
	assert.EqualValues(t, 501, page.Props["status"])
}
