// Package timezone pins the application clock to the configured location.
//
// Usage:
//
//	now := timezone.Now()                   // current time in the app timezone
//	local := timezone.ToAppTime(someTime)   // convert any time to the app timezone
//	formatted := timezone.Format(due, time.RFC3339)
//	t, err := timezone.Parse("2006-01-02", "2026-01-01")
//
// The location comes from the APP_TIMEZONE environment variable and is
// resolved once on package import. Use IANA database names ("UTC",
// "Asia/Jakarta", "Europe/London").
package timezone
