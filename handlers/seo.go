package handlers

import (
	"net/http"

	"atelier_site_go/config"
	"atelier_site_go/models"

	"github.com/labstack/echo/v4"
)

const (
	baseURL        = "https://latelierweb.fr"
	defaultOGImage = "https://latelierweb.fr/static/images/og-image.png"
)

// SEO configurations for public pages
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "L'Atelier Web - Agence de création de sites internet",
		Description: "L'Atelier Web conçoit des sites vitrines et e-commerce sur mesure : design, développement, référencement. Parlez-nous de votre projet.",
		Keywords:    "agence web, création site internet, site vitrine, webdesign, référencement",
		Canonical:   baseURL + "/",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "fr",
	},
	"legal": {
		Title:       "Mentions légales | L'Atelier Web",
		Description: "Mentions légales du site de L'Atelier Web : éditeur, hébergeur, propriété intellectuelle.",
		Keywords:    "mentions légales",
		Canonical:   baseURL + "/mentions-legales",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      "fr",
	},
	"privacy": {
		Title:       "Politique de confidentialité | L'Atelier Web",
		Description: "Politique de confidentialité de L'Atelier Web : données collectées via le formulaire de contact et vos droits.",
		Keywords:    "politique de confidentialité, données personnelles, RGPD",
		Canonical:   baseURL + "/politique-de-confidentialite",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      "fr",
	},
}

// GetSEO returns the SEO configuration for a page
func GetSEO(page string) *models.SEO {
	if seo, ok := pageSEO[page]; ok {
		// Return a copy to avoid mutations
		copy := *seo
		return &copy
	}
	return nil
}

// RobotsHandler serves robots.txt pointing crawlers at the sitemap.
func RobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	body := "User-agent: *\nAllow: /\n\nSitemap: " + cfg.AppURL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}
