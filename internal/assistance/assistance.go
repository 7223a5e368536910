package assistance

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/voltride/VR-CustomerPortal/internal/i18n"
)

// Виджет помощи: строит ссылки WhatsApp и tel: с предзаполненным сообщением.
// Переходы fire-and-forget — никакой обработки ответа нет.

// BookingSummary краткая сводка активной брони для сообщения оператору
type BookingSummary struct {
	Reference   string
	VehicleName string
	StartDate   string
	StartTime   string
	EndDate     string
	EndTime     string
}

// Request данные для построения ссылок помощи
type Request struct {
	CustomerName  string
	CustomerEmail string
	Booking       *BookingSummary

	// MapsLink опциональная ссылка на геопозицию клиента
	MapsLink string
}

// Links готовые ссылки для виджета помощи
type Links struct {
	WhatsAppURL string
	PhoneURL    string
	Message     string
}

// BuildMessage собирает текст сообщения оператору
func BuildMessage(lang i18n.Lang, req Request) string {
	var b strings.Builder

	b.WriteString(i18n.T(lang, "assistance.header"))
	b.WriteString("\n\n")

	if req.CustomerName != "" {
		fmt.Fprintf(&b, "%s: %s\n", i18n.T(lang, "assistance.customer"), req.CustomerName)
	}
	if req.CustomerEmail != "" {
		fmt.Fprintf(&b, "%s: %s\n", i18n.T(lang, "assistance.email"), req.CustomerEmail)
	}

	if req.Booking != nil {
		fmt.Fprintf(&b, "\n%s %s\n", i18n.T(lang, "assistance.vehicle"), req.Booking.VehicleName)
		fmt.Fprintf(&b, "Ref: %s\n", req.Booking.Reference)
		fmt.Fprintf(&b, "%s %s → %s %s\n",
			i18n.FormatDate(req.Booking.StartDate), req.Booking.StartTime,
			i18n.FormatDate(req.Booking.EndDate), req.Booking.EndTime)
	}

	if req.MapsLink != "" {
		fmt.Fprintf(&b, "\n%s %s\n", i18n.T(lang, "assistance.location"), req.MapsLink)
	}

	return b.String()
}

// BuildLinks строит ссылки wa.me и tel: для номера phone (формат +34...)
func BuildLinks(lang i18n.Lang, phone string, req Request) Links {
	message := BuildMessage(lang, req)

	return Links{
		WhatsAppURL: fmt.Sprintf("https://wa.me/%s?text=%s",
			strings.TrimPrefix(phone, "+"), url.QueryEscape(message)),
		PhoneURL: "tel:" + phone,
		Message:  message,
	}
}
