package domain

import "time"

// SameDay reports whether a and b fall on the same calendar date in the
// server's local zone. Day boundaries are compared by date components, not a
// rolling 24h window.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// DayBounds returns the local-midnight start of t's calendar day and the
// start of the next day. Used for same-day range queries.
func DayBounds(t time.Time) (start, end time.Time) {
	t = t.Local()
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
