package stats

import (
	"time"

	"github.com/nzoschke/productivity/internal/model"
)

type PrayerDayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type PrayerWeek struct {
	Days        []PrayerDayCount `json:"days"`
	Total       int              `json:"total"`
	PerfectDays int              `json:"perfectDays"`
	Average     float64          `json:"average"`
}

// WeekStart returns midnight of the Monday of the week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// WeeklyPrayer counts the prayers marked on each day of the Monday-starting
// week containing ref. Days without a record count as zero.
func WeeklyPrayer(days []model.PrayerDay, ref time.Time) PrayerWeek {
	byDate := make(map[string]model.PrayerDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	week := PrayerWeek{Days: make([]PrayerDayCount, 7)}
	start := WeekStart(ref)
	for i := range 7 {
		date := start.AddDate(0, 0, i).Format(model.DayLayout)
		count := byDate[date].Count()

		week.Days[i] = PrayerDayCount{Date: date, Count: count}
		week.Total += count
		if count == len(model.Prayers) {
			week.PerfectDays++
		}
	}

	week.Average = float64(week.Total) / 7
	return week
}

// PrayerCountOn returns the number of prayers marked on date (YYYY-MM-DD).
func PrayerCountOn(days []model.PrayerDay, date string) int {
	for _, d := range days {
		if d.Date == date {
			return d.Count()
		}
	}
	return 0
}
