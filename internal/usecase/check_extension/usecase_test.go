package check_extension

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubSessionRepo struct {
	saved   *domain.ExtensionSession
	updated *domain.ExtensionSession
}

func (s *stubSessionRepo) Save(_ context.Context, session *domain.ExtensionSession) error {
	copied := *session
	s.saved = &copied
	return nil
}

func (s *stubSessionRepo) Update(_ context.Context, session *domain.ExtensionSession) error {
	copied := *session
	s.updated = &copied
	return nil
}

type stubPlatform struct {
	getFn   func(ctx context.Context, bookingID int64) (*rentalplatform.Booking, error)
	checkFn func(ctx context.Context, bookingID int64, newEndDate types.DateString, newEndTime types.TimeString) (*rentalplatform.ExtensionCheck, error)
}

func (s *stubPlatform) GetBooking(ctx context.Context, bookingID int64) (*rentalplatform.Booking, error) {
	return s.getFn(ctx, bookingID)
}

func (s *stubPlatform) CheckExtension(ctx context.Context, bookingID int64, newEndDate types.DateString, newEndTime types.TimeString) (*rentalplatform.ExtensionCheck, error) {
	return s.checkFn(ctx, bookingID, newEndDate, newEndTime)
}

func wireBooking() *rentalplatform.Booking {
	return &rentalplatform.Booking{
		ID:         1,
		CustomerID: 7,
		Status:     "CONFIRMED",
		CheckedIn:  true,
		StartDate:  types.DateString("2026-03-20"),
		StartTime:  types.TimeString("10:00"),
		EndDate:    types.DateString("2026-03-24"),
		EndTime:    types.TimeString("18:00"),
		TotalPrice: 400,
	}
}

func validRequest() *Request {
	return &Request{
		CustomerID: 7,
		BookingID:  1,
		NewEndDate: types.DateString("2026-03-27"),
		NewEndTime: types.TimeString("18:00"),
	}
}

func TestUseCase_Execute_Available(t *testing.T) {
	repo := &stubSessionRepo{}
	platform := &stubPlatform{
		getFn: func(_ context.Context, _ int64) (*rentalplatform.Booking, error) {
			return wireBooking(), nil
		},
		checkFn: func(_ context.Context, bookingID int64, newEndDate types.DateString, newEndTime types.TimeString) (*rentalplatform.ExtensionCheck, error) {
			assert.Equal(t, int64(1), bookingID)
			assert.Equal(t, types.DateString("2026-03-27"), newEndDate)
			return &rentalplatform.ExtensionCheck{
				Available:              true,
				Pricing:                rentalplatform.ExtensionPricing{AdditionalDays: 3, TotalAmount: 320},
				AgencyPaymentAvailable: true,
			}, nil
		},
	}

	uc := NewUseCase(repo, platform, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, string(domain.StepAvailable), resp.Step)
	assert.Equal(t, 3, resp.AdditionalDays)
	assert.Equal(t, 320.0, resp.TotalAmount)
	// 400 за 4 дня → 100/день, +3 дня → 300 локальной оценки
	assert.Equal(t, 300.0, resp.EstimatedAmount)
	assert.True(t, resp.AgencyPaymentAvailable)

	// Сессия открыта в шаге checking и зафиксирована как available
	require.NotNil(t, repo.saved)
	assert.Equal(t, domain.StepChecking, repo.saved.Step)
	assert.Equal(t, int64(7), repo.saved.CustomerID)

	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.StepAvailable, repo.updated.Step)
	assert.Equal(t, 320.0, repo.updated.TotalAmount)
	assert.Nil(t, repo.updated.LastError)
}

func TestUseCase_Execute_Unavailable(t *testing.T) {
	repo := &stubSessionRepo{}
	platform := &stubPlatform{
		getFn: func(_ context.Context, _ int64) (*rentalplatform.Booking, error) {
			return wireBooking(), nil
		},
		checkFn: func(_ context.Context, _ int64, _ types.DateString, _ types.TimeString) (*rentalplatform.ExtensionCheck, error) {
			return &rentalplatform.ExtensionCheck{Available: false}, nil
		},
	}

	uc := NewUseCase(repo, platform, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, string(domain.StepUnavailable), resp.Step)
	assert.Zero(t, resp.TotalAmount)

	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.StepUnavailable, repo.updated.Step)
	// Недоступная пролонгация не дает перейти к оплате
	assert.False(t, repo.updated.CanConfirm())
}

func TestUseCase_Execute_PlatformFailure(t *testing.T) {
	repo := &stubSessionRepo{}
	platformErr := errors.New("rentalplatform: backend error: fleet conflict")
	platform := &stubPlatform{
		getFn: func(_ context.Context, _ int64) (*rentalplatform.Booking, error) {
			return wireBooking(), nil
		},
		checkFn: func(_ context.Context, _ int64, _ types.DateString, _ types.TimeString) (*rentalplatform.ExtensionCheck, error) {
			return nil, platformErr
		},
	}

	uc := NewUseCase(repo, platform, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, platformErr)

	// Сессия возвращается к форме с текстом ошибки
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.StepForm, repo.updated.Step)
	require.NotNil(t, repo.updated.LastError)
	assert.Contains(t, *repo.updated.LastError, "fleet conflict")
}

func TestUseCase_Execute_Guards(t *testing.T) {
	t.Run("booking not found", func(t *testing.T) {
		platform := &stubPlatform{
			getFn: func(_ context.Context, _ int64) (*rentalplatform.Booking, error) {
				return nil, rentalplatform.ErrBookingNotFound
			},
		}
		uc := NewUseCase(&stubSessionRepo{}, platform, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("foreign booking", func(t *testing.T) {
		platform := &stubPlatform{
			getFn: func(_ context.Context, _ int64) (*rentalplatform.Booking, error) {
				b := wireBooking()
				b.CustomerID = 99
				return b, nil
			},
		}
		uc := NewUseCase(&stubSessionRepo{}, platform, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("checked out booking", func(t *testing.T) {
		platform := &stubPlatform{
			getFn: func(_ context.Context, _ int64) (*rentalplatform.Booking, error) {
				b := wireBooking()
				b.CheckedOut = true
				return b, nil
			},
		}
		uc := NewUseCase(&stubSessionRepo{}, platform, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrCannotExtend)
	})

	t.Run("backwards extension is rejected locally", func(t *testing.T) {
		repo := &stubSessionRepo{}
		platform := &stubPlatform{
			getFn: func(_ context.Context, _ int64) (*rentalplatform.Booking, error) {
				return wireBooking(), nil
			},
			checkFn: func(_ context.Context, _ int64, _ types.DateString, _ types.TimeString) (*rentalplatform.ExtensionCheck, error) {
				t.Fatal("platform must not be called")
				return nil, nil
			},
		}
		uc := NewUseCase(repo, platform, nopLogger{})

		req := validRequest()
		req.NewEndDate = types.DateString("2026-03-22")
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, repo.saved)
	})

	t.Run("extension against contract current end", func(t *testing.T) {
		// Контракт уже продлен до 2026-03-28: новое окончание раньше него
		// отклоняется, хотя и позже исходного конца брони
		platform := &stubPlatform{
			getFn: func(_ context.Context, _ int64) (*rentalplatform.Booking, error) {
				b := wireBooking()
				b.Contract = &rentalplatform.Contract{
					ContractNumber: "C-1",
					CurrentEndDate: types.DateString("2026-03-28"),
					CurrentEndTime: types.TimeString("18:00"),
				}
				return b, nil
			},
		}
		uc := NewUseCase(&stubSessionRepo{}, platform, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed input", func(t *testing.T) {
		uc := NewUseCase(&stubSessionRepo{}, &stubPlatform{}, nopLogger{})

		req := validRequest()
		req.NewEndDate = types.DateString("27/03/2026")
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
