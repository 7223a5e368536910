package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

func TestIsRefundable(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	startDate := types.DateString("2026-03-10")
	startTime := types.TimeString("10:00")

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "a week ahead",
			now:  time.Date(2026, 3, 3, 10, 0, 0, 0, loc),
			want: true,
		},
		{
			name: "exactly 48 hours before pickup",
			now:  time.Date(2026, 3, 8, 10, 0, 0, 0, loc),
			want: true,
		},
		{
			name: "one minute inside the window",
			now:  time.Date(2026, 3, 8, 10, 1, 0, 0, loc),
			want: false,
		},
		{
			name: "the day before",
			now:  time.Date(2026, 3, 9, 10, 0, 0, 0, loc),
			want: false,
		},
		{
			name: "after pickup",
			now:  time.Date(2026, 3, 10, 12, 0, 0, 0, loc),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsRefundable(startDate, startTime, tt.now, loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsRefundable_InvalidDate(t *testing.T) {
	_, err := IsRefundable(types.DateString("not-a-date"), types.TimeString("10:00"), time.Now(), time.UTC)
	assert.Error(t, err)
}

func TestRefundAmount(t *testing.T) {
	assert.Equal(t, 150.0, RefundAmount(150.0, true))
	assert.Equal(t, 0.0, RefundAmount(150.0, false))
	assert.Equal(t, 0.0, RefundAmount(0, true))
}
