package model

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDMonotonic(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a := newIDAt(now)
	b := newIDAt(now)
	c := newIDAt(now.Add(-time.Second))

	ai, _ := strconv.ParseInt(a, 10, 64)
	bi, _ := strconv.ParseInt(b, 10, 64)
	ci, _ := strconv.ParseInt(c, 10, 64)
	assert.Less(t, ai, bi)
	assert.Less(t, bi, ci)
}

func TestOptJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		set   bool
		valid bool
	}{
		{name: "absent", input: `{}`, set: false, valid: false},
		{name: "null", input: `{"reminder":null}`, set: true, valid: false},
		{name: "value", input: `{"reminder":"2024-01-02T03:04:05Z"}`, set: true, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch TaskPatch
			require.NoError(t, json.Unmarshal([]byte(tt.input), &patch))
			assert.Equal(t, tt.set, patch.Reminder.IsSet())
			_, ok := patch.Reminder.Get()
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestTaskPatchApply(t *testing.T) {
	reminder := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	task := Task{ID: "1", Text: "old", Reminder: &reminder}

	text := "new"
	TaskPatch{Text: &text}.Apply(&task)
	assert.Equal(t, "new", task.Text)
	assert.NotNil(t, task.Reminder)

	TaskPatch{Reminder: Null[time.Time]()}.Apply(&task)
	assert.Nil(t, task.Reminder)
	assert.True(t, TaskPatch{}.IsEmpty())
}

func TestReminderDue(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, Task{Reminder: &past}.ReminderDue(now))
	assert.False(t, Task{Reminder: &future}.ReminderDue(now))
	assert.False(t, Task{Reminder: &past, Completed: true}.ReminderDue(now))
	assert.False(t, Task{}.ReminderDue(now))
}

func TestPrayerDay(t *testing.T) {
	day := NewPrayerDay("2024-01-01")
	assert.Equal(t, day.Date, day.ID)
	assert.Equal(t, 0, day.Count())

	for _, p := range Prayers {
		day.Set(p, true)
	}
	assert.Equal(t, 5, day.Count())

	day.Set(Asr, false)
	assert.False(t, day.Done(Asr))
	assert.Equal(t, 4, day.Count())

	_, err := ParsePrayer("witr")
	assert.Error(t, err)
	p, err := ParsePrayer("maghrib")
	require.NoError(t, err)
	assert.Equal(t, Maghrib, p)
}

func TestEnums(t *testing.T) {
	assert.True(t, GoalShortTerm.Valid())
	assert.False(t, GoalCategory("someday").Valid())
	assert.True(t, BookCompleted.Valid())
	assert.False(t, BookStatus("abandoned").Valid())
	assert.True(t, FinanceInvestment.Valid())
	assert.False(t, FinanceType("gift").Valid())
	assert.True(t, ValidDay("2024-02-29"))
	assert.False(t, ValidDay("2024-02-30"))
}
