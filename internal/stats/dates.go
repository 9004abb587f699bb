package stats

import (
	"fmt"
	"time"

	"github.com/nzoschke/productivity/internal/model"
)

// ParseDate accepts a full RFC 3339 timestamp or a bare YYYY-MM-DD date.
// Bare dates are anchored at 12:00 UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t.UTC(), nil
	}

	t, err = time.Parse(model.DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return t.Add(dateOnlyAnchor), nil
}

const dateOnlyAnchor = 12 * time.Hour

// isDateOnly reports whether t carries the anchor ParseDate gives bare dates.
func isDateOnly(t time.Time) bool {
	u := t.UTC()
	return u.Hour() == 12 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}

// SameDay reports whether a falls on the calendar day of ref, in ref's
// location. Date-only values compare by their stored UTC date.
func SameDay(a, ref time.Time) bool {
	var ay, ad int
	var am time.Month
	if isDateOnly(a) {
		ay, am, ad = a.UTC().Date()
	} else {
		ay, am, ad = a.In(ref.Location()).Date()
	}
	ry, rm, rd := ref.Date()
	return ay == ry && am == rm && ad == rd
}
