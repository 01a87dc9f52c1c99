package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"atelier_site_go/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(?:\+|00)?[0-9][0-9 .\-()]{5,}$`)
	digitRun     = regexp.MustCompile(`[0-9]{6,}`)
)

// ClassifyContact categorizes a free-text contact entry as an email address,
// a phone number, an uncertain entry or nothing. The order of the checks
// matters: the strict email pattern wins over the phone heuristics, and the
// loose "contains @" fallback only applies once both have failed.
// Patterns run against the raw value; trimming applies to the length check only.
func ClassifyContact(value string) models.ContactClassification {
	if value == "" {
		return models.ContactNone
	}

	if emailPattern.MatchString(value) {
		return models.ContactEmail
	}

	// Phone-looking entry, or at least six consecutive digits anywhere
	if phonePattern.MatchString(value) || digitRun.MatchString(value) {
		return models.ContactPhone
	}

	// Mistyped email (spaces, double dots...) still routes to the email channel
	if strings.Contains(value, "@") {
		return models.ContactEmail
	}

	if utf8.RuneCountInString(strings.TrimSpace(value)) > 5 {
		return models.ContactUncertain
	}

	return models.ContactNone
}
