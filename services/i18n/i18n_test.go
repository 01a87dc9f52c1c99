package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, Load())

	t.Run("French key", func(t *testing.T) {
		assert.Equal(t, "Captcha invalide", Translate("fr", "contact.error.captcha_invalid"))
	})

	t.Run("English key", func(t *testing.T) {
		assert.Equal(t, "Invalid captcha", Translate("en", "contact.error.captcha_invalid"))
	})

	t.Run("Unknown language falls back to default", func(t *testing.T) {
		assert.Equal(t, "Captcha invalide", Translate("de", "contact.error.captcha_invalid"))
	})

	t.Run("Unknown key falls back to the key itself", func(t *testing.T) {
		assert.Equal(t, "contact.error.nope", Translate("fr", "contact.error.nope"))
	})

	t.Run("Named argument replacement", func(t *testing.T) {
		got := Translate("fr", "email.subject.contact", map[string]interface{}{"name": "Alice"})
		assert.Equal(t, "Nouvelle demande de contact de Alice", got)
	})
}
