package handlers

import (
	"net/http"
	"strings"

	"atelier_site_go/config"
	"atelier_site_go/models"
	"atelier_site_go/services"
	"atelier_site_go/services/i18n"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Collaborator seams, overridable in tests
var (
	verifyCaptcha        = services.VerifyTurnstileToken
	dispatchNotification = services.SendContactNotification
)

// ContactPostHandler handles POST /api/contact: it verifies the captcha token
// with Cloudflare and, only then, forwards the submission to the agency inbox.
// The two upstream calls are strictly sequential; an unverified submission is
// never dispatched.
func ContactPostHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	lang := cfg.Locale

	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ContactResponse{
			Error: i18n.Translate(lang, "contact.error.invalid_request"),
		})
	}

	if strings.TrimSpace(req.CaptchaToken) == "" {
		return c.JSON(http.StatusBadRequest, models.ContactResponse{
			Error: i18n.Translate(lang, "contact.error.captcha_invalid"),
		})
	}

	verified, err := verifyCaptcha(req.CaptchaToken, cfg.TurnstileSecretKey, c.RealIP())
	if err != nil {
		c.Logger().Errorf("Turnstile verification call failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ContactResponse{
			Error: i18n.Translate(lang, "contact.error.captcha"),
		})
	}
	if !verified {
		c.Logger().Warnf("Turnstile rejected token from %s", c.RealIP())
		return c.JSON(http.StatusBadRequest, models.ContactResponse{
			Error: i18n.Translate(lang, "contact.error.captcha_invalid"),
		})
	}

	reference := uuid.New().String()
	if err := dispatchNotification(cfg, req, reference); err != nil {
		c.Logger().Errorf("Failed to send contact notification %s: %v", reference, err)
		return c.JSON(http.StatusInternalServerError, models.ContactResponse{
			Error: i18n.Translate(lang, "contact.error.email"),
		})
	}

	c.Logger().Infof("Contact submission %s forwarded to %s", reference, cfg.ContactRecipient)
	return c.JSON(http.StatusOK, models.ContactResponse{OK: true})
}
