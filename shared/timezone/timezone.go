package timezone

import (
	"sportshub/config"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	clockMu     sync.RWMutex
	clock       = clockwork.NewRealClock()
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// SetClock swaps the clock behind Now and returns a func restoring the previous one.
func SetClock(c clockwork.Clock) (restore func()) {
	clockMu.Lock()
	defer clockMu.Unlock()

	previous := clock
	clock = c

	return func() {
		clockMu.Lock()
		defer clockMu.Unlock()

		clock = previous
	}
}

// Now returns the current time in the application timezone
func Now() time.Time {
	clockMu.RLock()
	now := clock.Now()
	clockMu.RUnlock()

	return ToAppTime(now)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
