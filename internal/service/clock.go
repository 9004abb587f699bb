package service

import (
	"time"

	"github.com/nzoschke/productivity/internal/model"
)

// Clock reports the current time in the user's timezone. Calendar-day
// questions ("today", "this week") are answered in that location.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{loc: loc, now: time.Now}
}

// FixedClock always returns t; used by tests and the backup command.
func FixedClock(t time.Time) Clock {
	return Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now().UTC()
	}
	return c.now().In(c.loc)
}

// Today is the current calendar date as YYYY-MM-DD.
func (c Clock) Today() string {
	return c.Now().Format(model.DayLayout)
}
