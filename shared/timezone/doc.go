// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now() // Get current time in app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Calendar days, as stored on bookings and ledger entries:
//     day, err := timezone.ParseDay("2024-01-04")
//     text := timezone.FormatDay(day)
//
//  4. Counting nights between two stored days:
//     from, err := timezone.ParseCalendarDay("2024-11-02")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
