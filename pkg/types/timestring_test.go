package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")

	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	cases := []string{"9:30", "09:60", "24:00", "09-30", "", "morning"}

	for _, c := range cases {
		_, err := NewTimeStringFromString(c)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", c)
	}
}

func TestNewTimeString_FromTime(t *testing.T) {
	moment := time.Date(2025, 6, 2, 14, 5, 59, 0, time.UTC)

	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTotalMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").TotalMinutes())
	assert.Equal(t, 9*60+30, TimeString("09:30").TotalMinutes())
	assert.Equal(t, 23*60+59, TimeString("23:59").TotalMinutes())
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.True(t, TimeString("10:00").Equal("10:00"))
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:45").AddMinutes(30)

	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)
}

func TestAddMinutes_CrossesMidnight(t *testing.T) {
	_, err := TimeString("23:30").AddMinutes(60)

	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAddMinutes_NegativeBelowZero(t *testing.T) {
	_, err := TimeString("00:30").AddMinutes(-60)

	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMinutesSince(t *testing.T) {
	assert.Equal(t, 90, TimeString("10:30").MinutesSince("09:00"))
	assert.Equal(t, -90, TimeString("09:00").MinutesSince("10:30"))
}

func TestOnDate(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	result := TimeString("10:30").OnDate(date)

	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC), result)
}

func TestScan_PostgresTime(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestScan_Bytes(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("18:00")))
	assert.Equal(t, TimeString("18:00"), ts)
}

func TestScan_Nil(t *testing.T) {
	ts := TimeString("09:00")

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:30").Value()

	require.NoError(t, err)
	assert.Equal(t, "09:30", v)
}

func TestValue_ZeroIsNull(t *testing.T) {
	v, err := TimeString("").Value()

	require.NoError(t, err)
	assert.Nil(t, v)
}
