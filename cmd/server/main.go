package main

import (
	"log"

	"atelier_site_go/config"
	"atelier_site_go/handlers"
	"atelier_site_go/middleware"
	"atelier_site_go/services/i18n"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Load translations
	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load locales: %v", err)
	}

	// Compute asset versions for cache busting
	middleware.InitAssetVersions(cfg.StaticDir)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", cfg.StaticDir)

	// Public pages
	e.GET("/", handlers.HomeHandler)
	e.GET("/mentions-legales", handlers.LegalNoticeHandler)
	e.GET("/politique-de-confidentialite", handlers.PrivacyPolicyHandler)

	// SEO surface
	e.GET("/robots.txt", handlers.RobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	// API
	e.GET("/api/health", handlers.HealthHandler)
	e.POST("/api/contact", handlers.ContactPostHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
