package timezone

import (
	"fmt"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

func toAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

func parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, parsing in UTC")
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return toAppTime(t).Format(layout)
}

// ParseDay reads a calendar day (YYYY-MM-DD) as midnight in the application
// timezone. Full RFC3339 timestamps are accepted and truncated to their day.
func ParseDay(value string) (time.Time, error) {
	if t, err := parse(constant.DayFormat, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", value, err)
	}

	t = toAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}

// ParseCalendarDay reads value like ParseDay but returns the day as UTC
// midnight, so the distance between two days is always whole 24 hour steps
// whatever daylight saving the application timezone observes.
func ParseCalendarDay(value string) (time.Time, error) {
	t, err := ParseDay(value)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDay renders t as YYYY-MM-DD in the application timezone.
func FormatDay(t time.Time) string {
	return Format(t, constant.DayFormat)
}

// SetLocation overrides the application timezone.
func SetLocation(loc *time.Location) {
	appLocation = loc
}
