package timezone_test

import (
	"testing"
	"time"

	"pmsbridge/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLocation(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })

	require.NoError(t, timezone.SetLocation("America/New_York"))
	assert.Equal(t, "America/New_York", timezone.GetLocation().String())
	assert.Equal(t, "America/New_York", timezone.Now().Location().String())

	assert.Error(t, timezone.SetLocation("Mars/Olympus_Mons"))
	assert.Equal(t, "America/New_York", timezone.GetLocation().String())

	require.NoError(t, timezone.SetLocation(""))
	assert.Equal(t, time.UTC.String(), timezone.GetLocation().String())
}

func TestToAppTime(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })
	require.NoError(t, timezone.SetLocation("Asia/Jakarta"))

	utc := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	local := timezone.ToAppTime(utc)

	assert.True(t, utc.Equal(local))
	assert.Equal(t, 11, local.Day())
}

func TestCalendarDate(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "utc morning", in: time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC), want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "keeps local wall date", in: time.Date(2024, 3, 11, 3, 0, 0, 0, jakarta), want: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.CalendarDate(tt.in))
		})
	}
}
