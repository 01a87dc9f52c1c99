package services

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"strings"

	"atelier_site_go/config"
	"atelier_site_go/models"
	"atelier_site_go/services/i18n"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/contact_notification.html
var contactNotificationSrc string

var contactNotificationTmpl = template.Must(
	template.New("contact_notification").Parse(contactNotificationSrc))

// Submitted values end up inside the notification HTML; strip any markup
// before they are marked safe for the template.
var notificationSanitizer = bluemonday.StrictPolicy()

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

type contactNotificationData struct {
	Reference string
	Name      template.HTML
	Email     template.HTML
	Phone     template.HTML
	Message   template.HTML
}

// BuildContactNotification composes the internal notification email for a
// visitor submission. Missing fields are replaced with a localized
// placeholder so the agency inbox never receives a half-empty table.
func BuildContactNotification(req models.ContactRequest, reference, lang string) (*Email, error) {
	placeholder := i18n.Translate(lang, "email.placeholder.not_provided")

	name := fieldOrPlaceholder(req.Name, placeholder)
	data := contactNotificationData{
		Reference: reference,
		Name:      sanitizeField(req.Name, placeholder),
		Email:     sanitizeField(req.Email, placeholder),
		Phone:     sanitizeField(req.Phone, placeholder),
		Message:   sanitizeField(req.Message, placeholder),
	}

	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render contact notification: %w", err)
	}

	textBody := fmt.Sprintf(
		"Reference: %s\nNom: %s\nEmail: %s\nTelephone: %s\n\n%s\n",
		reference,
		name,
		fieldOrPlaceholder(req.Email, placeholder),
		fieldOrPlaceholder(req.Phone, placeholder),
		fieldOrPlaceholder(req.Message, placeholder),
	)

	return &Email{
		Subject:  i18n.Translate(lang, "email.subject.contact", map[string]interface{}{"name": name}),
		HTMLBody: buf.String(),
		TextBody: textBody,
	}, nil
}

// SendContactNotification builds the notification for a submission and sends
// it to the agency inbox configured in CONTACT_RECIPIENT.
func SendContactNotification(cfg *config.Config, req models.ContactRequest, reference string) error {
	email, err := BuildContactNotification(req, reference, cfg.Locale)
	if err != nil {
		return err
	}
	email.To = []string{cfg.ContactRecipient}
	return SendEmail(cfg, email)
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (development mode - not actually sent)")
		return nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	if email.HTMLBody == "" && email.TextBody == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

func sanitizeField(value, placeholder string) template.HTML {
	value = strings.TrimSpace(value)
	if value == "" {
		return template.HTML(template.HTMLEscapeString(placeholder))
	}
	// StrictPolicy strips all tags and escapes the rest, so the result is
	// safe to inject as-is.
	return template.HTML(notificationSanitizer.Sanitize(value))
}

func fieldOrPlaceholder(value, placeholder string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return placeholder
	}
	return value
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
