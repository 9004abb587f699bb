package model

import (
	"time"
)

type BookStatus string

const (
	BookInProgress BookStatus = "in-progress"
	BookCompleted  BookStatus = "completed"
)

func (s BookStatus) Valid() bool {
	return s == BookInProgress || s == BookCompleted
}

type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	Status      BookStatus `json:"status"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	StartedAt   *time.Time `json:"startedDate,omitempty"`
	CompletedAt *time.Time `json:"completedDate,omitempty"`
}

func (b Book) Key() string { return b.ID }

type BookPatch struct {
	Title       *string        `json:"title"`
	Author      *string        `json:"author"`
	Status      *BookStatus    `json:"status"`
	ImageURL    *string        `json:"imageUrl"`
	Notes       *string        `json:"notes"`
	StartedAt   Opt[time.Time] `json:"startedDate"`
	CompletedAt Opt[time.Time] `json:"completedDate"`
}

func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Status == nil && p.ImageURL == nil &&
		p.Notes == nil && !p.StartedAt.IsSet() && !p.CompletedAt.IsSet()
}

func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.StartedAt.IsSet() {
		b.StartedAt = p.StartedAt.Ptr()
	}
	if p.CompletedAt.IsSet() {
		b.CompletedAt = p.CompletedAt.Ptr()
	}
}
