// Package form models the contact form's submission controller: field state,
// contact-channel classification, captcha gating and the single-flight call
// to the intake endpoint. The page widgets only ever see SubmissionResult.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"atelier_site_go/models"
	"atelier_site_go/services"
	"atelier_site_go/services/i18n"
)

// Field names accepted by UpdateField.
const (
	FieldName               = "name"
	FieldContact            = "contact"
	FieldProjectType        = "projectType"
	FieldProjectDescription = "projectDescription"
)

// ContactSubmission holds the state of one form session. It is created empty,
// mutated field by field as the visitor types, and reset after a successful
// submission.
type ContactSubmission struct {
	Name               string
	ContactValue       string
	ProjectType        string
	ProjectDescription string
	CaptchaToken       string
}

// SubmissionResult is the sole outcome contract surfaced to the UI layer.
type SubmissionResult struct {
	Success bool
	Message string
}

// Controller owns one form instance. At most one submission is in flight at
// a time; a concurrent Submit fails fast instead of double-posting.
type Controller struct {
	endpoint string
	lang     string
	client   *http.Client

	mu             sync.Mutex
	isSubmitting   bool
	submission     ContactSubmission
	classification models.ContactClassification
}

// NewController creates a controller posting to the given intake endpoint.
// A nil client gets a default with a bounded timeout.
func NewController(endpoint, lang string, client *http.Client) *Controller {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if lang == "" {
		lang = "fr"
	}
	return &Controller{
		endpoint:       endpoint,
		lang:           lang,
		client:         client,
		classification: models.ContactNone,
	}
}

// UpdateField mutates one field of the submission. Changing the contact field
// triggers reclassification; other fields have no side effect.
func (c *Controller) UpdateField(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case FieldName:
		c.submission.Name = value
	case FieldContact:
		c.submission.ContactValue = value
		c.classification = services.ClassifyContact(value)
	case FieldProjectType:
		c.submission.ProjectType = value
	case FieldProjectDescription:
		c.submission.ProjectDescription = value
	}
}

// SetCaptchaToken stores the token produced by the challenge widget.
func (c *Controller) SetCaptchaToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submission.CaptchaToken = token
}

// Classification returns the current contact-channel classification.
func (c *Controller) Classification() models.ContactClassification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.classification
}

// Submission returns a snapshot of the current form state.
func (c *Controller) Submission() ContactSubmission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submission
}

// IsSubmitting reports whether a submission is currently in flight.
func (c *Controller) IsSubmitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isSubmitting
}

// Submit sends the current submission to the intake endpoint.
//
// Without a captcha token it fails immediately, before any network I/O. The
// token is single-use: it is cleared after every attempt, success or failure,
// and the widget must be solved again before retrying. Form fields are only
// cleared on success so a failed attempt can be corrected and resent.
// Network and server failures are converted to a failed SubmissionResult;
// nothing panics or propagates.
func (c *Controller) Submit(ctx context.Context) SubmissionResult {
	c.mu.Lock()
	if c.isSubmitting {
		c.mu.Unlock()
		return SubmissionResult{Message: i18n.Translate(c.lang, "form.error.in_flight")}
	}
	if c.submission.CaptchaToken == "" {
		c.mu.Unlock()
		return SubmissionResult{Message: i18n.Translate(c.lang, "form.error.captcha_required")}
	}
	c.isSubmitting = true
	submission := c.submission
	classification := c.classification
	c.mu.Unlock()

	result := c.post(ctx, buildRequest(submission, classification), classification)

	c.mu.Lock()
	c.isSubmitting = false
	// Single-use token: spent on the attempt whatever the outcome
	c.submission.CaptchaToken = ""
	if result.Success {
		c.submission = ContactSubmission{}
		c.classification = models.ContactNone
	}
	c.mu.Unlock()

	return result
}

// buildRequest maps the form state onto the intake payload: the contact value
// goes into the channel-appropriate field, and project type and description
// are folded into a single message body.
func buildRequest(submission ContactSubmission, classification models.ContactClassification) models.ContactRequest {
	req := models.ContactRequest{
		Name:         submission.Name,
		CaptchaToken: submission.CaptchaToken,
	}

	switch classification {
	case models.ContactPhone:
		req.Phone = submission.ContactValue
	case models.ContactEmail:
		req.Email = submission.ContactValue
	default:
		// Free-form entry: routed to the email column so it still reaches
		// the agency inbox
		req.Email = submission.ContactValue
	}

	var parts []string
	if submission.ProjectType != "" {
		parts = append(parts, "Projet : "+submission.ProjectType)
	}
	if submission.ProjectDescription != "" {
		parts = append(parts, submission.ProjectDescription)
	}
	req.Message = strings.Join(parts, "\n\n")

	return req
}

func (c *Controller) post(ctx context.Context, payload models.ContactRequest, classification models.ContactClassification) SubmissionResult {
	body, err := json.Marshal(payload)
	if err != nil {
		return SubmissionResult{Message: i18n.Translate(c.lang, "form.error.generic")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return SubmissionResult{Message: i18n.Translate(c.lang, "form.error.generic")}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return SubmissionResult{Message: i18n.Translate(c.lang, "form.error.network")}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return SubmissionResult{Success: true, Message: c.confirmationMessage(classification)}
	}

	// Surface the server-provided message when the body parses, otherwise a
	// generic fallback
	var out models.ContactResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Error == "" {
		return SubmissionResult{Message: i18n.Translate(c.lang, "form.error.generic")}
	}
	return SubmissionResult{Message: out.Error}
}

func (c *Controller) confirmationMessage(classification models.ContactClassification) string {
	switch classification {
	case models.ContactEmail:
		return i18n.Translate(c.lang, "form.success.email")
	case models.ContactPhone:
		return i18n.Translate(c.lang, "form.success.phone")
	default:
		return i18n.Translate(c.lang, "form.success.generic")
	}
}
