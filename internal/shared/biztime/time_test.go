package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUTC(t *testing.T) {
	now := NowUTC()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestNowAfter_FutureReference(t *testing.T) {
	future := time.Now().Add(time.Hour)

	got := NowAfter(future)

	assert.True(t, got.After(future))
	assert.Equal(t, future.UTC().Truncate(Precision).Add(Precision), got)
}

func TestNowAfter_PastReference(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	got := NowAfter(past)

	assert.True(t, got.After(past))
	assert.WithinDuration(t, time.Now(), got, time.Second)
}

func TestFormatISO8601(t *testing.T) {
	assert.Nil(t, FormatISO8601(time.Time{}))

	ts := time.Date(2024, 3, 5, 7, 8, 9, 123456000, time.FixedZone("UTC+3", 3*3600))
	got := FormatISO8601(ts)
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-05T04:08:09.123456Z", *got)
}
