package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router  *gin.Engine
	Handler http.Handler
	Cookies []*http.Cookie
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	return &HTTPTestSuite{
		Router: router,
	}
}

func (suite *HTTPTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range suite.Cookies {
		req.AddCookie(c)
	}

	recorder := httptest.NewRecorder()
	if suite.Handler != nil {
		suite.Handler.ServeHTTP(recorder, req)
	} else {
		suite.Router.ServeHTTP(recorder, req)
	}

	// carry cookies forward like a browser would
	for _, c := range recorder.Result().Cookies() {
		suite.setCookie(c)
	}
	return recorder
}

func (suite *HTTPTestSuite) setCookie(c *http.Cookie) {
	kept := suite.Cookies[:0]
	for _, existing := range suite.Cookies {
		if existing.Name != c.Name {
			kept = append(kept, existing)
		}
	}
	suite.Cookies = kept
	if c.MaxAge >= 0 && c.Value != "" {
		suite.Cookies = append(suite.Cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
}

// MakeRequest creates and executes an HTTP request with an optional JSON body
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return suite.serve(req)
}

// MakeFormRequest submits url-encoded form values, the way an HTML form posts
func (suite *HTTPTestSuite) MakeFormRequest(method, target string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return suite.serve(req)
}

// GetPage requests a page as a JSON page object
func (suite *HTTPTestSuite) GetPage(url string) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(http.MethodGet, url, nil, map[string]string{"X-Inertia": "true"})
}

// PageObject mirrors the JSON page payload
type PageObject struct {
	Component string                 `json:"component"`
	Props     map[string]interface{} `json:"props"`
	URL       string                 `json:"url"`
	Version   string                 `json:"version"`
}

// ParsePage decodes a JSON page response
func ParsePage(t *testing.T, recorder *httptest.ResponseRecorder) PageObject {
	t.Helper()
	assert.Equal(t, "true", recorder.Header().Get("X-Inertia"))
	var page PageObject
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page), recorder.Body.String())
	return page
}

// AssertRedirect asserts a redirect status and Location header
func AssertRedirect(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedLocation string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, expectedLocation, recorder.Header().Get("Location"))
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}

// CreateTestGinContext creates a test Gin context
func CreateTestGinContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	return ctx, recorder
}

// Form builds url.Values from a flat map
func Form(values map[string]string) url.Values {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}
	return form
}
