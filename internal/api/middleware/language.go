package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/voltride/VR-CustomerPortal/internal/i18n"
)

const langKey contextKey = "lang"

// Language определяет язык ответа: параметр ?lang= имеет приоритет над
// заголовком Accept-Language, неизвестные значения сводятся к языку
// по умолчанию.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := r.URL.Query().Get("lang")
		if tag == "" {
			tag = primaryAcceptLanguage(r.Header.Get("Accept-Language"))
		}

		ctx := context.WithValue(r.Context(), langKey, i18n.Normalize(tag))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLang возвращает язык ответа из контекста
func GetLang(ctx context.Context) i18n.Lang {
	if lang, ok := ctx.Value(langKey).(i18n.Lang); ok {
		return lang
	}
	return i18n.DefaultLang
}

// primaryAcceptLanguage берет первый тег из Accept-Language, отбрасывая
// вес и дополнительные варианты
func primaryAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	return strings.TrimSpace(strings.Split(first, ";")[0])
}
