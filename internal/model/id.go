package model

import (
	"strconv"
	"sync"
	"time"
)

// DayLayout is the calendar-date format used for prayer keys and date-only inputs.
const DayLayout = "2006-01-02"

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a timestamp-derived identifier (Unix milliseconds).
// Ids are strictly increasing within the process so two records created
// in the same millisecond never collide.
func NewID() string {
	return newIDAt(time.Now())
}

func newIDAt(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := now.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}

// ValidDay reports whether s is a YYYY-MM-DD calendar date.
func ValidDay(s string) bool {
	_, err := time.Parse(DayLayout, s)
	return err == nil
}
