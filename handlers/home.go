package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"

	"atelier_site_go/config"
	"atelier_site_go/middleware"

	"github.com/labstack/echo/v4"
)

// HomeHandler serves the single-page shell. The page is a template rather
// than a plain file so the Turnstile site key and the cache-busting asset
// versions can be injected at render time.
func HomeHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	tmpl, err := template.ParseFiles(filepath.Join(cfg.StaticDir, "index.html"))
	if err != nil {
		c.Logger().Errorf("Failed to parse index template: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Page unavailable")
	}

	data := map[string]interface{}{
		"TurnstileSiteKey": cfg.TurnstileSiteKey,
		"CSSVersion":       middleware.GetCSSVersion(),
		"AppJSVersion":     middleware.GetAppJSVersion(),
		"SEO":              GetSEO("landing"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		c.Logger().Errorf("Failed to render index template: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Page unavailable")
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// LegalNoticeHandler serves the mentions legales page.
func LegalNoticeHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	return c.File(filepath.Join(cfg.StaticDir, "mentions-legales.html"))
}

// PrivacyPolicyHandler serves the privacy policy page.
func PrivacyPolicyHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	return c.File(filepath.Join(cfg.StaticDir, "politique-de-confidentialite.html"))
}
