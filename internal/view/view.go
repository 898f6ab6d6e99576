package view

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"company-directory/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Headers of the page protocol
const (
	HeaderPage     = "X-Inertia"
	HeaderVersion  = "X-Inertia-Version"
	HeaderLocation = "X-Inertia-Location"
)

// Page is the payload handed to the client-side renderer
type Page struct {
	Component string `json:"component"`
	Props     gin.H  `json:"props"`
	URL       string `json:"url"`
	Version   string `json:"version"`
}

// SharedProps returns props merged into every page
type SharedProps func(c *gin.Context) gin.H

var shell = template.Must(template.New("app").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title }}</title>
<script type="module" src="/build/app.js" defer></script>
</head>
<body>
<div id="app" data-page="{{ .Page }}"></div>
</body>
</html>
`))

// Renderer turns handler view-models into pages, redirects and error pages
type Renderer struct {
	flash   *session.FlashStore
	title   string
	version string
	shared  []SharedProps
}

// NewRenderer creates a renderer; version changes force clients to reload
func NewRenderer(flash *session.FlashStore, title, version string) *Renderer {
	return &Renderer{flash: flash, title: title, version: version}
}

// Share registers props added to every page
func (r *Renderer) Share(fn SharedProps) {
	r.shared = append(r.shared, fn)
}

// Render writes component with props and status 200
func (r *Renderer) Render(c *gin.Context, component string, props gin.H) {
	r.RenderStatus(c, http.StatusOK, component, props)
}

// RenderStatus writes component with props and the given status
func (r *Renderer) RenderStatus(c *gin.Context, status int, component string, props gin.H) {
	if c.Request.Method == http.MethodGet && isPageRequest(c) {
		if v := c.GetHeader(HeaderVersion); v != "" && v != r.version {
			// stale client assets: ask for a full reload
			c.Header(HeaderLocation, c.Request.URL.RequestURI())
			c.Status(http.StatusConflict)
			return
		}
	}

	page := Page{
		Component: component,
		Props:     r.props(c, props),
		URL:       c.Request.URL.RequestURI(),
		Version:   r.version,
	}

	if isPageRequest(c) {
		c.Header(HeaderPage, "true")
		c.Header("Vary", HeaderPage)
		c.JSON(status, page)
		return
	}

	encoded, err := json.Marshal(page)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to encode page")
		return
	}
	c.Render(status, render.HTML{
		Template: shell,
		Name:     "app",
		Data: gin.H{
			"Title": r.title,
			"Page":  string(encoded),
		},
	})
}

// Error renders the error page for status
func (r *Renderer) Error(c *gin.Context, status int, message string) {
	r.RenderStatus(c, status, "Error", gin.H{
		"status":  status,
		"message": message,
	})
}

// Redirect sends the client to location. Non-GET/POST requests get 303 so the
// follow-up request is a GET.
func (r *Renderer) Redirect(c *gin.Context, location string) {
	status := http.StatusFound
	switch c.Request.Method {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		status = http.StatusSeeOther
	}
	c.Redirect(status, location)
}

// Back redirects to the page the request came from, falling back to fallback
func (r *Renderer) Back(c *gin.Context, fallback string) {
	r.Redirect(c, previousURL(c, fallback))
}

// BackWith stores flash and redirects back
func (r *Renderer) BackWith(c *gin.Context, fallback string, f session.Flash) {
	if err := r.flash.Put(c, f); err != nil {
		_ = c.Error(err)
	}
	r.Back(c, fallback)
}

func (r *Renderer) props(c *gin.Context, props gin.H) gin.H {
	merged := gin.H{}
	for _, fn := range r.shared {
		for k, v := range fn(c) {
			merged[k] = v
		}
	}

	f := r.flash.Pull(c)
	errors := f.Errors
	if errors == nil {
		errors = map[string]string{}
	}
	old := f.Old
	if old == nil {
		old = map[string]string{}
	}
	merged["flash"] = gin.H{"success": f.Success}
	merged["errors"] = errors
	merged["old"] = old

	for k, v := range props {
		merged[k] = v
	}
	return merged
}

func isPageRequest(c *gin.Context) bool {
	return c.GetHeader(HeaderPage) == "true"
}

// previousURL keeps only the path and query of the Referer so redirects stay on this host
func previousURL(c *gin.Context, fallback string) string {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || !isLocalPath(u.Path) {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

// isLocalPath rejects paths a browser would resolve against another host
func isLocalPath(path string) bool {
	if !strings.HasPrefix(path, "/") {
		return false
	}
	return !strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "/\\")
}
