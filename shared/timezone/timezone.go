package timezone

import (
	"fmt"
	"sync"
	"time"

	"pmsbridge/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	once        sync.Once
	mu          sync.RWMutex
)

// SetLocation loads an IANA zone name and makes it the application timezone.
func SetLocation(name string) error {
	if name == "" {
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	mu.Lock()
	appLocation = loc
	mu.Unlock()

	return nil
}

func location() *time.Location {
	once.Do(func() {
		mu.RLock()
		loaded := appLocation != nil
		mu.RUnlock()

		if loaded {
			return
		}

		name := config.Get().App.Timezone
		if err := SetLocation(name); err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("Falling back to UTC, use an IANA name such as 'America/New_York'")

			_ = SetLocation("UTC")

			return
		}

		log.Info().Str("timezone", name).Msg("Application timezone initialized")
	})

	mu.RLock()
	defer mu.RUnlock()

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func GetLocation() *time.Location {
	return location()
}

// CalendarDate returns the wall-clock date of t as midnight UTC, the form vendor dates are parsed into.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
