package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltride/VR-CustomerPortal/internal/integrations/rentalplatform"
	"github.com/voltride/VR-CustomerPortal/internal/service/profile/models"
	"github.com/voltride/VR-CustomerPortal/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubPlatform struct {
	getFn    func(ctx context.Context, customerID int64) (*rentalplatform.Profile, error)
	updateFn func(ctx context.Context, customerID int64, req *rentalplatform.UpdateProfileRequest) (*rentalplatform.Profile, error)
	deleteFn func(ctx context.Context, customerID int64) (*rentalplatform.DeletionRequestResult, error)
}

func (s *stubPlatform) GetProfile(ctx context.Context, customerID int64) (*rentalplatform.Profile, error) {
	return s.getFn(ctx, customerID)
}

func (s *stubPlatform) UpdateProfile(ctx context.Context, customerID int64, req *rentalplatform.UpdateProfileRequest) (*rentalplatform.Profile, error) {
	return s.updateFn(ctx, customerID, req)
}

func (s *stubPlatform) RequestDataDeletion(ctx context.Context, customerID int64) (*rentalplatform.DeletionRequestResult, error) {
	return s.deleteFn(ctx, customerID)
}

func TestService_Get(t *testing.T) {
	platform := &stubPlatform{
		getFn: func(_ context.Context, customerID int64) (*rentalplatform.Profile, error) {
			return &rentalplatform.Profile{
				ID:                  customerID,
				FirstName:           "María",
				Email:               "maria@example.com",
				ActiveBookingsCount: 2,
			}, nil
		},
	}
	svc := NewService(platform, nopLogger{})

	view, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, 2, view.ActiveBookingsCount)
	assert.False(t, view.CanRequestDeletion)
}

func TestService_Update(t *testing.T) {
	t.Run("passes only the provided fields", func(t *testing.T) {
		platform := &stubPlatform{
			updateFn: func(_ context.Context, _ int64, req *rentalplatform.UpdateProfileRequest) (*rentalplatform.Profile, error) {
				require.NotNil(t, req.Phone)
				assert.Equal(t, "+34600111222", *req.Phone)
				assert.Nil(t, req.FirstName)
				return &rentalplatform.Profile{ID: 7, Phone: *req.Phone}, nil
			},
		}
		svc := NewService(platform, nopLogger{})

		view, err := svc.Update(context.Background(), 7, &models.UpdateProfileParams{Phone: ptr.Ptr("+34600111222")})
		require.NoError(t, err)
		assert.Equal(t, "+34600111222", view.Phone)
	})

	t.Run("overlong field is rejected", func(t *testing.T) {
		platform := &stubPlatform{
			updateFn: func(_ context.Context, _ int64, _ *rentalplatform.UpdateProfileRequest) (*rentalplatform.Profile, error) {
				t.Fatal("platform must not be called")
				return nil, nil
			},
		}
		svc := NewService(platform, nopLogger{})

		long := strings.Repeat("a", 101)
		_, err := svc.Update(context.Background(), 7, &models.UpdateProfileParams{FirstName: ptr.Ptr(long)})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unsupported language is rejected", func(t *testing.T) {
		platform := &stubPlatform{}
		svc := NewService(platform, nopLogger{})

		_, err := svc.Update(context.Background(), 7, &models.UpdateProfileParams{Language: ptr.Ptr("de")})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestService_RequestDeletion(t *testing.T) {
	t.Run("active bookings block the request", func(t *testing.T) {
		platform := &stubPlatform{
			getFn: func(_ context.Context, _ int64) (*rentalplatform.Profile, error) {
				return &rentalplatform.Profile{ID: 7, ActiveBookingsCount: 1}, nil
			},
			deleteFn: func(_ context.Context, _ int64) (*rentalplatform.DeletionRequestResult, error) {
				t.Fatal("platform must not be called")
				return nil, nil
			},
		}
		svc := NewService(platform, nopLogger{})

		_, err := svc.RequestDeletion(context.Background(), 7)
		assert.ErrorIs(t, err, ErrActiveBookings)
	})

	t.Run("idle profile goes through", func(t *testing.T) {
		platform := &stubPlatform{
			getFn: func(_ context.Context, _ int64) (*rentalplatform.Profile, error) {
				return &rentalplatform.Profile{ID: 7, ActiveBookingsCount: 0}, nil
			},
			deleteFn: func(_ context.Context, customerID int64) (*rentalplatform.DeletionRequestResult, error) {
				assert.Equal(t, int64(7), customerID)
				return &rentalplatform.DeletionRequestResult{Message: "solicitud registrada"}, nil
			},
		}
		svc := NewService(platform, nopLogger{})

		result, err := svc.RequestDeletion(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "solicitud registrada", result.Message)
	})
}
