package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSitemapHandler(t *testing.T) {
	c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)
	assert.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<?xml")
	assert.Contains(t, body, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, body, "http://localhost:8080/</loc>")
	assert.Contains(t, body, "/mentions-legales")
	assert.Contains(t, body, "/politique-de-confidentialite")
}

func TestRobotsHandler(t *testing.T) {
	c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
	assert.NoError(t, RobotsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User-agent: *")
	assert.Contains(t, rec.Body.String(), "Sitemap: http://localhost:8080/sitemap.xml")
}

func TestGetSEO(t *testing.T) {
	seo := GetSEO("landing")
	assert.NotNil(t, seo)
	assert.Contains(t, seo.Title, "Atelier Web")

	// Returned value is a copy, mutations do not leak into the table
	seo.Title = "mutated"
	assert.NotEqual(t, "mutated", GetSEO("landing").Title)

	assert.Nil(t, GetSEO("unknown-page"))
}
