package models

// ContactRequest is the payload accepted by POST /api/contact.
// Only the captcha token is required; missing identity fields are replaced
// with a placeholder when the notification email is composed.
type ContactRequest struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Message      string `json:"message,omitempty"`
	CaptchaToken string `json:"captchaToken"`
}

// ContactResponse is the uniform JSON body returned by the intake endpoint.
type ContactResponse struct {
	OK    bool   `json:"ok,omitempty"`
	Error string `json:"error,omitempty"`
}

// ContactClassification is the heuristic category of a free-text contact
// field entry (email address, phone number, something else, or empty).
type ContactClassification string

const (
	ContactEmail     ContactClassification = "email"
	ContactPhone     ContactClassification = "phone"
	ContactUncertain ContactClassification = "uncertain"
	ContactNone      ContactClassification = "none"
)
