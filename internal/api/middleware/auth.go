// Package middleware содержит HTTP middleware портала: идентификация
// клиента, язык ответа, метрики и логирование запросов.
package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const customerIDKey contextKey = "customerID"

// HeaderCustomerID заголовок с идентификатором авторизованного клиента.
// Его проставляет внешний шлюз после проверки сессии.
const HeaderCustomerID = "X-Customer-ID"

// Auth извлекает ID клиента из заголовка и кладет его в контекст.
// Запросы без валидного заголовка получают 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderCustomerID)
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "missing or invalid customer identity"}`))
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerID возвращает ID клиента из контекста
func GetCustomerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(customerIDKey).(int64)
	return id, ok
}
