package stats

import (
	"math"
	"time"

	"github.com/nzoschke/productivity/internal/model"
)

type RecitationStats struct {
	Total          int  `json:"total"`
	Completed      int  `json:"completed"`
	CompletionRate int  `json:"completionRate"`
	TodayCount     int  `json:"todayCount"`
	LoggedToday    bool `json:"loggedToday"`
}

// Recitations computes the completion rate as a whole percentage (0 for an
// empty list) and whether anything was logged on now's calendar day.
func Recitations(list []model.Recitation, now time.Time) RecitationStats {
	var s RecitationStats
	s.Total = len(list)

	for _, r := range list {
		if r.Completed {
			s.Completed++
		}
		if SameDay(r.Date, now) {
			s.TodayCount++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) * 100 / float64(s.Total)))
	}
	s.LoggedToday = s.TodayCount > 0
	return s
}

// LatestRecitation returns the most recent entry by date, or nil.
func LatestRecitation(list []model.Recitation) *model.Recitation {
	var latest *model.Recitation
	for i := range list {
		if latest == nil || list[i].Date.After(latest.Date) {
			latest = &list[i]
		}
	}
	if latest == nil {
		return nil
	}
	r := *latest
	return &r
}
