package model

import (
	"time"
)

type GoalCategory string

const (
	GoalShortTerm GoalCategory = "short-term"
	GoalLongTerm  GoalCategory = "long-term"
)

func (c GoalCategory) Valid() bool {
	return c == GoalShortTerm || c == GoalLongTerm
}

type Goal struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Reminder    *time.Time   `json:"reminder,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	Category    GoalCategory `json:"type"`
}

func (g Goal) Key() string { return g.ID }

type GoalPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	ImageURL    *string        `json:"imageUrl"`
	Reminder    Opt[time.Time] `json:"reminder"`
	Category    *GoalCategory  `json:"type"`
}

func (p GoalPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.ImageURL == nil &&
		!p.Reminder.IsSet() && p.Category == nil
}

func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.ImageURL != nil {
		g.ImageURL = *p.ImageURL
	}
	if p.Reminder.IsSet() {
		g.Reminder = p.Reminder.Ptr()
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
}
