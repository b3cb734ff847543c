package timezone_test

import (
	"sportshub/shared/timezone"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowFollowsClock(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	fake := clockwork.NewFakeClockAt(fixed)

	restore := timezone.SetClock(fake)
	defer restore()

	assert.True(t, timezone.Now().Equal(fixed))

	fake.Advance(90 * time.Minute)
	assert.True(t, timezone.Now().Equal(fixed.Add(90*time.Minute)))
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-01-15")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2025-01-15", timezone.Format(parsed, "2006-01-02"))

	_, err = timezone.Parse("2006-01-02", "15/01/2025")
	assert.Error(t, err)
}
