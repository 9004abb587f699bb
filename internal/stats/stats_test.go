package stats

import (
	"testing"
	"time"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthlyFinance(t *testing.T) {
	entries := []model.FinanceEntry{
		{ID: "1", Type: model.FinanceSalary, Amount: 1000, Date: day("2024-01-05")},
		{ID: "2", Type: model.FinanceExpense, Amount: 200, Date: day("2024-01-10")},
		{ID: "3", Type: model.FinanceSavings, Amount: 100, Date: day("2024-01-15")},
		{ID: "4", Type: model.FinanceInvestment, Amount: 50, Date: day("2024-01-31")},
		{ID: "5", Type: model.FinanceExpense, Amount: 999, Date: day("2024-02-01")},
	}

	s := MonthlyFinance(entries, "2024-01")
	assert.Equal(t, 650.0, s.Net)
	assert.Equal(t, 1000.0, s.Salary)
	assert.Equal(t, 200.0, s.Expenses)
	assert.Equal(t, 100.0, s.Savings)
	assert.Equal(t, 50.0, s.Investments)
	assert.Len(t, s.Entries, 4)

	t.Run("empty month", func(t *testing.T) {
		s := MonthlyFinance(entries, "2023-12")
		assert.Equal(t, 0.0, s.Net)
		assert.NotNil(t, s.Entries)
		assert.Empty(t, s.Entries)
	})

	t.Run("keeps full precision", func(t *testing.T) {
		s := MonthlyFinance([]model.FinanceEntry{
			{Type: model.FinanceSalary, Amount: 0.1, Date: day("2024-03-01")},
			{Type: model.FinanceSalary, Amount: 0.2, Date: day("2024-03-02")},
		}, "2024-03")
		assert.InDelta(t, 0.3, s.Salary, 1e-12)
	})
}

func TestWeeklyPrayer(t *testing.T) {
	full := model.NewPrayerDay("2024-01-01")
	for _, p := range model.Prayers {
		full.Set(p, true)
	}

	// 2024-01-03 is a Wednesday; its week starts on Monday 2024-01-01.
	ref := time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC)
	week := WeeklyPrayer([]model.PrayerDay{full}, ref)

	require.Len(t, week.Days, 7)
	assert.Equal(t, "2024-01-01", week.Days[0].Date)
	assert.Equal(t, "2024-01-07", week.Days[6].Date)
	assert.Equal(t, 5, week.Total)
	assert.Equal(t, 1, week.PerfectDays)
	assert.InDelta(t, 0.714, week.Average, 0.001)

	t.Run("sunday belongs to previous monday", func(t *testing.T) {
		start := WeekStart(time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC))
		assert.Equal(t, "2024-01-01", start.Format(model.DayLayout))
	})

	t.Run("partial day is not perfect", func(t *testing.T) {
		partial := model.NewPrayerDay("2024-01-02")
		partial.Set(model.Fajr, true)
		week := WeeklyPrayer([]model.PrayerDay{partial}, ref)
		assert.Equal(t, 1, week.Total)
		assert.Equal(t, 0, week.PerfectDays)
		assert.Equal(t, 1, PrayerCountOn([]model.PrayerDay{partial}, "2024-01-02"))
		assert.Equal(t, 0, PrayerCountOn([]model.PrayerDay{partial}, "2024-01-03"))
	})
}

func TestRecitations(t *testing.T) {
	now := time.Date(2024, 4, 10, 18, 0, 0, 0, time.UTC)
	list := []model.Recitation{
		{ID: "1", Completed: true, Date: day("2024-04-07")},
		{ID: "2", Completed: true, Date: day("2024-04-08")},
		{ID: "3", Completed: true, Date: day("2024-04-09")},
		{ID: "4", Completed: false, Date: day("2024-04-10")},
	}

	s := Recitations(list, now)
	assert.Equal(t, 75, s.CompletionRate)
	assert.Equal(t, 3, s.Completed)
	assert.Equal(t, 4, s.Total)
	assert.True(t, s.LoggedToday)
	assert.Equal(t, 1, s.TodayCount)

	latest := LatestRecitation(list)
	require.NotNil(t, latest)
	assert.Equal(t, "4", latest.ID)

	t.Run("empty", func(t *testing.T) {
		s := Recitations(nil, now)
		assert.Equal(t, 0, s.CompletionRate)
		assert.False(t, s.LoggedToday)
		assert.Nil(t, LatestRecitation(nil))
	})
}

func TestSameDay(t *testing.T) {
	kiritimati := time.FixedZone("+14", 14*3600)
	samoa := time.FixedZone("-11", -11*3600)

	t.Run("date only", func(t *testing.T) {
		d := day("2024-04-10")
		assert.True(t, SameDay(d, time.Date(2024, 4, 10, 0, 30, 0, 0, kiritimati)))
		assert.True(t, SameDay(d, time.Date(2024, 4, 10, 23, 30, 0, 0, kiritimati)))
		assert.True(t, SameDay(d, time.Date(2024, 4, 10, 0, 30, 0, 0, samoa)))
		assert.False(t, SameDay(d, time.Date(2024, 4, 11, 1, 0, 0, 0, kiritimati)))
	})

	t.Run("timestamp", func(t *testing.T) {
		ts := time.Date(2024, 4, 10, 11, 0, 0, 0, time.UTC)
		assert.True(t, SameDay(ts, time.Date(2024, 4, 11, 6, 0, 0, 0, kiritimati)))
		assert.False(t, SameDay(ts, time.Date(2024, 4, 10, 6, 0, 0, 0, kiritimati)))
	})

	t.Run("recitation logged today east of UTC+12", func(t *testing.T) {
		now := time.Date(2024, 4, 10, 8, 0, 0, 0, kiritimati)
		s := Recitations([]model.Recitation{{ID: "1", Date: day("2024-04-10")}}, now)
		assert.True(t, s.LoggedToday)
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-01-31T23:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", d.Format(MonthLayout))

	_, err = ParseDate("31/01/2024")
	assert.Error(t, err)
}

func TestDashboardHelpers(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-2 * time.Hour)
	later := now.Add(3 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)

	tasks := []model.Task{
		{ID: "1", Reminder: &past, CreatedAt: yesterday},
		{ID: "2", Reminder: &later, CreatedAt: now},
		{ID: "3", Completed: true, Reminder: &past, CreatedAt: now},
		{ID: "4", Completed: true, CreatedAt: yesterday},
	}

	overdue := OverdueTasks(tasks, now)
	require.Len(t, overdue, 1)
	assert.Equal(t, "1", overdue[0].ID)
	assert.Len(t, TodayTasks(tasks, now), 3)
	assert.Equal(t, 1, CompletedToday(tasks, now))

	short, long := GoalsByCategory([]model.Goal{
		{ID: "a", Category: model.GoalShortTerm},
		{ID: "b", Category: model.GoalLongTerm},
		{ID: "c", Category: model.GoalLongTerm},
	})
	assert.Len(t, short, 1)
	assert.Len(t, long, 2)

	reading, completed := BooksByStatus([]model.Book{{Status: model.BookInProgress}})
	assert.Len(t, reading, 1)
	assert.Empty(t, completed)
}
