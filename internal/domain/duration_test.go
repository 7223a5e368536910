package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start types.DateString
		end   types.DateString
		want  int
	}{
		{"same day", "2026-03-10", "2026-03-10", 0},
		{"one day", "2026-03-10", "2026-03-11", 1},
		{"three days", "2026-03-10", "2026-03-13", 3},
		{"reversed range is negative", "2026-03-13", "2026-03-10", -3},
		{"across month boundary", "2026-02-27", "2026-03-02", 3},
		{"across year boundary", "2025-12-30", "2026-01-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysBetween(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysBetween_InvalidDate(t *testing.T) {
	_, err := DaysBetween(types.DateString("2026-03-10"), types.DateString("bad"))
	assert.Error(t, err)
}

func TestClampDays(t *testing.T) {
	assert.Equal(t, 0, ClampDays(-5))
	assert.Equal(t, 0, ClampDays(0))
	assert.Equal(t, 7, ClampDays(7))
}

func TestAdditionalDays(t *testing.T) {
	assert.Equal(t, 2, AdditionalDays(3, 5))
	assert.Equal(t, 0, AdditionalDays(3, 3))
	assert.Equal(t, -1, AdditionalDays(3, 2))
}

func TestIsForwardExtension(t *testing.T) {
	tests := []struct {
		name    string
		curDate types.DateString
		curTime types.TimeString
		newDate types.DateString
		newTime types.TimeString
		want    bool
	}{
		{"later date", "2026-03-10", "18:00", "2026-03-12", "10:00", true},
		{"same date later time", "2026-03-10", "18:00", "2026-03-10", "19:00", true},
		{"same date same time", "2026-03-10", "18:00", "2026-03-10", "18:00", false},
		{"same date earlier time", "2026-03-10", "18:00", "2026-03-10", "12:00", false},
		{"earlier date later time", "2026-03-10", "18:00", "2026-03-09", "23:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsForwardExtension(tt.curDate, tt.curTime, tt.newDate, tt.newTime))
		})
	}
}
