package model

import (
	"time"
)

type Recitation struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Surah     string    `json:"surah"`
	Verses    string    `json:"verses"`
	Notes     string    `json:"notes,omitempty"`
	Completed bool      `json:"completed"`
}

func (r Recitation) Key() string { return r.ID }

type RecitationPatch struct {
	Date      Opt[time.Time] `json:"date"`
	Surah     *string        `json:"surah"`
	Verses    *string        `json:"verses"`
	Notes     *string        `json:"notes"`
	Completed *bool          `json:"completed"`
}

func (p RecitationPatch) IsEmpty() bool {
	return !p.Date.IsSet() && p.Surah == nil && p.Verses == nil && p.Notes == nil && p.Completed == nil
}

func (p RecitationPatch) Apply(r *Recitation) {
	if v, ok := p.Date.Get(); ok {
		r.Date = v
	}
	if p.Surah != nil {
		r.Surah = *p.Surah
	}
	if p.Verses != nil {
		r.Verses = *p.Verses
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.Completed != nil {
		r.Completed = *p.Completed
	}
}
