package handlers

import (
	"io"
	"net/http/httptest"

	"atelier_site_go/config"
	"atelier_site_go/services/i18n"

	"github.com/labstack/echo/v4"
)

func init() {
	if err := i18n.Load(); err != nil {
		panic(err)
	}
}

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:         "8080",
		Environment:        "test",
		AppURL:             "http://localhost:8080",
		StaticDir:          "static",
		Locale:             "fr",
		EmailFrom:          "noreply@latelierweb.fr",
		EmailFromName:      "L'Atelier Web",
		ContactRecipient:   "contact@latelierweb.fr",
		EmailTestMode:      true,
		TurnstileSecretKey: "test-secret",
	}
}

func setupEcho(method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())
	return c, rec
}
