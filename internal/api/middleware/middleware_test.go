package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltride/VR-CustomerPortal/internal/i18n"
)

func TestAuth(t *testing.T) {
	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetCustomerID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header reaches handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(HeaderCustomerID, "42")
		rec := httptest.NewRecorder()
		Auth(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		rec := httptest.NewRecorder()
		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("non numeric header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(HeaderCustomerID, "abc")
		rec := httptest.NewRecorder()
		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non positive id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(HeaderCustomerID, "0")
		rec := httptest.NewRecorder()
		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		acceptLanguage string
		want           i18n.Lang
	}{
		{name: "query parameter wins", query: "?lang=fr", acceptLanguage: "en-US,en;q=0.9", want: i18n.LangFR},
		{name: "accept language header", acceptLanguage: "en-US,en;q=0.9", want: i18n.LangEN},
		{name: "region subtag reduced", acceptLanguage: "es-MX", want: i18n.LangES},
		{name: "unknown falls back to default", query: "?lang=de", want: i18n.DefaultLang},
		{name: "nothing provided", want: i18n.DefaultLang},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got i18n.Lang
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetLang(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/bookings"+tt.query, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			Language(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetLang_MissingContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, i18n.DefaultLang, GetLang(req.Context()))
}
