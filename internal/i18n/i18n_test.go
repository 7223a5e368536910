package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		tag  string
		want Lang
	}{
		{"es", LangES},
		{"en", LangEN},
		{"fr", LangFR},
		{"es-ES", LangES},
		{"en-GB", LangEN},
		{"fr-FR", LangFR},
		{"de", LangES},
		{"", LangES},
		{"english", LangES},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.tag))
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("es"))
	assert.True(t, Supported("en"))
	assert.True(t, Supported("fr"))
	assert.False(t, Supported("es-ES"))
	assert.False(t, Supported("de"))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Confirmed", T(LangEN, "status.CONFIRMED"))
	assert.Equal(t, "Confirmada", T(LangES, "status.CONFIRMED"))
	assert.Equal(t, "Confirmée", T(LangFR, "status.CONFIRMED"))

	// Отсутствующий у языка ключ откатывается к испанскому
	assert.Equal(t, T(LangES, "status.PENDING"), T(Lang("de"), "status.PENDING"))

	// Полностью неизвестный ключ возвращается как есть
	assert.Equal(t, "no.such.key", T(LangEN, "no.such.key"))
}

func TestTf(t *testing.T) {
	msg := Tf(LangES, "cancel.refundable", 150.0)
	assert.Contains(t, msg, "150€")

	msg = Tf(LangEN, "cancel.nonRefundable", 80.0, 48)
	assert.Contains(t, msg, "80€")
	assert.Contains(t, msg, "48 h")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "10/03/2026", FormatDate("2026-03-10"))
	assert.Equal(t, "bad", FormatDate("bad"))
	assert.Equal(t, "", FormatDate(""))
}
