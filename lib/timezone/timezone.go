package timezone

import "time"

// Location is India Standard Time, every time cricbuzz lists for an IPL
// fixture is in it.
var Location = time.FixedZone("IST", 5*60*60+30*60)

// Now returns the current time in IST, so that Year()/Month()/Day() line up
// with the match days cricbuzz shows regardless of where the server runs.
func Now() time.Time {
	return time.Now().In(Location)
}

// Stamp formats `t` in IST like "2025-03-22 19:30 IST".
func Stamp(t time.Time) string {
	return t.In(Location).Format("2006-01-02 15:04 MST")
}
