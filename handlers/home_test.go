package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHomeHandler(t *testing.T) {
	dir := t.TempDir()
	page := `<html><head><title>{{.SEO.Title}}</title></head>` +
		`<body><div class="cf-turnstile" data-sitekey="{{.TurnstileSiteKey}}"></div>` +
		`<script src="/static/js/app.js?v={{.AppJSVersion}}"></script></body></html>`
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0644))

	cfg := testConfig()
	cfg.StaticDir = dir
	cfg.TurnstileSiteKey = "site-key-1"

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", cfg)

	assert.NoError(t, HomeHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-sitekey="site-key-1"`)
	assert.Contains(t, rec.Body.String(), "Atelier Web")
}

func TestHomeHandlerMissingTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.StaticDir = t.TempDir()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", cfg)

	err := HomeHandler(c)
	assert.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}
