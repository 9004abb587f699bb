package model

import (
	"time"
)

// VisionItem is a vision board card. The form expects an image or a quote,
// storage accepts both empty.
type VisionItem struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Quote     string    `json:"quote,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (v VisionItem) Key() string { return v.ID }

type VisionPatch struct {
	ImageURL *string `json:"imageUrl"`
	Quote    *string `json:"quote"`
}

func (p VisionPatch) IsEmpty() bool {
	return p.ImageURL == nil && p.Quote == nil
}

func (p VisionPatch) Apply(v *VisionItem) {
	if p.ImageURL != nil {
		v.ImageURL = *p.ImageURL
	}
	if p.Quote != nil {
		v.Quote = *p.Quote
	}
}
