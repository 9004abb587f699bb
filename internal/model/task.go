package model

import (
	"time"
)

type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Reminder  *time.Time `json:"reminder,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (t Task) Key() string { return t.ID }

// ReminderDue reports whether an incomplete task's reminder has passed.
func (t Task) ReminderDue(now time.Time) bool {
	return !t.Completed && t.Reminder != nil && !t.Reminder.After(now)
}

type TaskPatch struct {
	Text      *string        `json:"text"`
	Completed *bool          `json:"completed"`
	Reminder  Opt[time.Time] `json:"reminder"`
}

func (p TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Completed == nil && !p.Reminder.IsSet()
}

func (p TaskPatch) Apply(t *Task) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Reminder.IsSet() {
		t.Reminder = p.Reminder.Ptr()
	}
}
