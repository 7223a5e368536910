package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltride/VR-CustomerPortal/internal/api/middleware"
	"github.com/voltride/VR-CustomerPortal/internal/i18n"
	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/internal/service/bookings"
	"github.com/voltride/VR-CustomerPortal/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	fn func(ctx context.Context, customerID, bookingID int64, lang i18n.Lang) (*models.BookingDetail, error)
}

func (s *stubService) GetByID(ctx context.Context, customerID, bookingID int64, lang i18n.Lang) (*models.BookingDetail, error) {
	return s.fn(ctx, customerID, bookingID, lang)
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	sub := r.PathPrefix("/api/customer-portal").Subrouter()
	sub.Use(middleware.Language)
	protected := sub.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings/{bookingId}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	t.Run("returns detail for the authenticated customer", func(t *testing.T) {
		service := &stubService{
			fn: func(_ context.Context, customerID, bookingID int64, lang i18n.Lang) (*models.BookingDetail, error) {
				assert.Equal(t, int64(7), customerID)
				assert.Equal(t, int64(1), bookingID)
				assert.Equal(t, i18n.LangEN, lang)
				return &models.BookingDetail{
					Booking:      &models.BookingView{ID: bookingID, Reference: "VR-1001"},
					Refundable:   true,
					RefundAmount: 120,
				}, nil
			},
		}
		router := newRouter(NewHandler(service, nopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/customer-portal/bookings/1?lang=en", nil)
		req.Header.Set(middleware.HeaderCustomerID, "7")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var detail models.BookingDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		assert.Equal(t, "VR-1001", detail.Booking.Reference)
		assert.True(t, detail.Refundable)
	})

	t.Run("missing identity header", func(t *testing.T) {
		router := newRouter(NewHandler(&stubService{}, nopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/customer-portal/bookings/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non numeric booking id", func(t *testing.T) {
		router := newRouter(NewHandler(&stubService{}, nopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/customer-portal/bookings/abc", nil)
		req.Header.Set(middleware.HeaderCustomerID, "7")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign booking maps to 403", func(t *testing.T) {
		service := &stubService{
			fn: func(_ context.Context, _, _ int64, _ i18n.Lang) (*models.BookingDetail, error) {
				return nil, bookings.ErrAccessDenied
			},
		}
		router := newRouter(NewHandler(service, nopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/customer-portal/bookings/1", nil)
		req.Header.Set(middleware.HeaderCustomerID, "7")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("backend rejection text is surfaced verbatim", func(t *testing.T) {
		service := &stubService{
			fn: func(_ context.Context, _, _ int64, _ i18n.Lang) (*models.BookingDetail, error) {
				return nil, &rentalplatform.BackendError{
					StatusCode: http.StatusConflict,
					Msg:        "la reserva fue modificada por otro agente",
				}
			},
		}
		router := newRouter(NewHandler(service, nopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/customer-portal/bookings/1", nil)
		req.Header.Set(middleware.HeaderCustomerID, "7")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadGateway, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "la reserva fue modificada por otro agente", body["error"])
	})

	t.Run("transport failure falls back to generic message", func(t *testing.T) {
		service := &stubService{
			fn: func(_ context.Context, _, _ int64, _ i18n.Lang) (*models.BookingDetail, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}
		router := newRouter(NewHandler(service, nopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/customer-portal/bookings/1", nil)
		req.Header.Set(middleware.HeaderCustomerID, "7")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadGateway, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, msgPlatformError, body["error"])
	})

	t.Run("missing booking maps to 404", func(t *testing.T) {
		service := &stubService{
			fn: func(_ context.Context, _, _ int64, _ i18n.Lang) (*models.BookingDetail, error) {
				return nil, bookings.ErrBookingNotFound
			},
		}
		router := newRouter(NewHandler(service, nopLogger{}))

		req := httptest.NewRequest(http.MethodGet, "/api/customer-portal/bookings/1", nil)
		req.Header.Set(middleware.HeaderCustomerID, "7")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})
}
