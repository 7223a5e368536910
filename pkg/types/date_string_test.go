package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString_Validate(t *testing.T) {
	assert.NoError(t, DateString("2026-03-10").Validate())
	assert.NoError(t, DateString("2026-12-31").Validate())

	assert.Error(t, DateString("2026-13-01").Validate())
	assert.Error(t, DateString("10/03/2026").Validate())
	assert.Error(t, DateString("").Validate())
}

func TestDateString_At(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	got, err := DateString("2026-03-10").At(TimeString("10:30"), loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 10, 30, 0, 0, loc), got)

	_, err = DateString("bad").At(TimeString("10:30"), loc)
	assert.Error(t, err)

	_, err = DateString("2026-03-10").At(TimeString("bad"), loc)
	assert.Error(t, err)
}

func TestDateString_Ordering(t *testing.T) {
	assert.True(t, DateString("2026-03-09").IsBefore(DateString("2026-03-10")))
	assert.True(t, DateString("2026-03-11").IsAfter(DateString("2026-03-10")))
	assert.False(t, DateString("2026-03-10").IsBefore(DateString("2026-03-10")))
}

func TestNewDateString(t *testing.T) {
	moment := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, DateString("2026-03-10"), NewDateString(moment))
}
