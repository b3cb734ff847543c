// Package timezone pins every clock read and date/time rendering to APP_TIMEZONE.
//
// Booking dates and slot times are wall-clock values on campus, so services call
// timezone.Now instead of time.Now and format with timezone.Format:
//
//	today := timezone.Format(timezone.Now(), constant.DayFormat)
//	at, err := timezone.Parse(constant.ClockFormat, "09:30")
//
// The location is loaded once at package init from an IANA name ("UTC",
// "Asia/Jakarta") and falls back to UTC when the name is unknown. Tests freeze the
// clock with SetClock:
//
//	restore := timezone.SetClock(clockwork.NewFakeClockAt(t0))
//	defer restore()
package timezone
