package model

import (
	"time"
)

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n Note) Key() string { return n.ID }

type NotePatch struct {
	Title     *string        `json:"title"`
	Content   *string        `json:"content"`
	UpdatedAt Opt[time.Time] `json:"updatedAt"`
}

func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && !p.UpdatedAt.IsSet()
}

func (p NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if v, ok := p.UpdatedAt.Get(); ok {
		n.UpdatedAt = v
	}
}
