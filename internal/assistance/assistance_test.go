package assistance

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltride/VR-CustomerPortal/internal/i18n"
)

func TestBuildMessage(t *testing.T) {
	req := Request{
		CustomerName:  "María García",
		CustomerEmail: "maria@example.com",
		Booking: &BookingSummary{
			Reference:   "VR-2041",
			VehicleName: "Furgoneta camper",
			StartDate:   "2026-03-10",
			StartTime:   "10:00",
			EndDate:     "2026-03-14",
			EndTime:     "18:00",
		},
		MapsLink: "https://maps.google.com/?q=40.4,-3.7",
	}

	msg := BuildMessage(i18n.LangES, req)

	assert.True(t, strings.HasPrefix(msg, "*ASISTENCIA SOLICITADA*"))
	assert.Contains(t, msg, "Cliente: María García")
	assert.Contains(t, msg, "Email: maria@example.com")
	assert.Contains(t, msg, "Furgoneta camper")
	assert.Contains(t, msg, "Ref: VR-2041")
	assert.Contains(t, msg, "10/03/2026 10:00")
	assert.Contains(t, msg, "14/03/2026 18:00")
	assert.Contains(t, msg, "https://maps.google.com/?q=40.4,-3.7")
}

func TestBuildMessage_OptionalParts(t *testing.T) {
	msg := BuildMessage(i18n.LangEN, Request{})

	assert.True(t, strings.HasPrefix(msg, "*ASSISTANCE REQUESTED*"))
	assert.NotContains(t, msg, "Customer:")
	assert.NotContains(t, msg, "Email:")
	assert.NotContains(t, msg, "Ref:")
}

func TestBuildLinks(t *testing.T) {
	links := BuildLinks(i18n.LangES, "+34655489614", Request{CustomerName: "María"})

	assert.True(t, strings.HasPrefix(links.WhatsAppURL, "https://wa.me/34655489614?text="), links.WhatsAppURL)
	assert.Equal(t, "tel:+34655489614", links.PhoneURL)

	// Текст в ссылке должен раскодироваться в то же сообщение
	parsed, err := url.Parse(links.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, links.Message, parsed.Query().Get("text"))
}
