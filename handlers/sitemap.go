package handlers

import (
	"encoding/xml"
	"net/http"

	"atelier_site_go/config"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap for the public pages.
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	siteURL := cfg.AppURL

	urls := []SitemapURL{
		{Loc: siteURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: siteURL + "/mentions-legales", ChangeFreq: "yearly", Priority: 0.3},
		{Loc: siteURL + "/politique-de-confidentialite", ChangeFreq: "yearly", Priority: 0.3},
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}
