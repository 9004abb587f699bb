package stats

import (
	"time"

	"github.com/nzoschke/productivity/internal/model"
)

// OverdueTasks are incomplete tasks whose reminder has passed.
func OverdueTasks(tasks []model.Task, now time.Time) []model.Task {
	out := []model.Task{}
	for _, t := range tasks {
		if t.ReminderDue(now) {
			out = append(out, t)
		}
	}
	return out
}

// TodayTasks are tasks with a reminder on now's calendar day.
func TodayTasks(tasks []model.Task, now time.Time) []model.Task {
	out := []model.Task{}
	for _, t := range tasks {
		if t.Reminder != nil && SameDay(*t.Reminder, now) {
			out = append(out, t)
		}
	}
	return out
}

// CompletedToday counts completed tasks created on now's calendar day.
func CompletedToday(tasks []model.Task, now time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.Completed && SameDay(t.CreatedAt, now) {
			n++
		}
	}
	return n
}

func GoalsByCategory(goals []model.Goal) (short, long []model.Goal) {
	short, long = []model.Goal{}, []model.Goal{}
	for _, g := range goals {
		switch g.Category {
		case model.GoalShortTerm:
			short = append(short, g)
		case model.GoalLongTerm:
			long = append(long, g)
		}
	}
	return short, long
}

func BooksByStatus(books []model.Book) (reading, completed []model.Book) {
	reading, completed = []model.Book{}, []model.Book{}
	for _, b := range books {
		switch b.Status {
		case model.BookInProgress:
			reading = append(reading, b)
		case model.BookCompleted:
			completed = append(completed, b)
		}
	}
	return reading, completed
}
