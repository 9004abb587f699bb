package service

import (
	"context"
	"strings"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/repository"
	"github.com/nzoschke/productivity/internal/validation"
)

const maxQuote = 1000

type VisionService struct {
	repo  repository.VisionRepository
	items *Collection[model.VisionItem]
	clock Clock
}

func NewVisionService(repo repository.VisionRepository, fallback *localstore.Store[model.VisionItem], clock Clock) *VisionService {
	return &VisionService{
		repo:  repo,
		items: NewCollection("vision item", "vision", fallback),
		clock: clock,
	}
}

func (s *VisionService) Collection() *Collection[model.VisionItem] {
	return s.items
}

func (s *VisionService) Load(ctx context.Context) error {
	return s.items.Load(ctx, s.repo.All)
}

func (s *VisionService) Add(ctx context.Context, imageURL, quote string) (model.VisionItem, error) {
	item := model.VisionItem{
		ID:        model.NewID(),
		ImageURL:  validation.NormalizeImageURL(imageURL),
		Quote:     strings.TrimSpace(quote),
		CreatedAt: s.clock.Now().UTC(),
	}

	err := validateVision(item)
	if err != nil {
		return model.VisionItem{}, err
	}

	err = s.items.Mutate(ctx, "add", appendItem(item), func(ctx context.Context) error {
		return s.repo.Create(ctx, item)
	})
	if err != nil {
		return model.VisionItem{}, err
	}
	return item, nil
}

func (s *VisionService) Edit(ctx context.Context, id string, patch model.VisionPatch) (model.VisionItem, error) {
	if patch.ImageURL != nil {
		url := validation.NormalizeImageURL(*patch.ImageURL)
		patch.ImageURL = &url
	}
	if patch.Quote != nil {
		quote := strings.TrimSpace(*patch.Quote)
		patch.Quote = &quote
	}

	if patch.IsEmpty() {
		item, ok := s.items.Find(id)
		if !ok {
			return model.VisionItem{}, ErrNotFound
		}
		return item, nil
	}

	item, err := s.items.edit(ctx, "update", id, func(v *model.VisionItem) error {
		next := *v
		patch.Apply(&next)
		err := validateVision(next)
		if err != nil {
			return err
		}
		*v = next
		return nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, patch)
	})
	if err != nil {
		return model.VisionItem{}, err
	}

	s.items.clearImageFailed(id)
	return item, nil
}

func (s *VisionService) Delete(ctx context.Context, id string) error {
	return s.items.remove(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

// validateVision requires an image or a quote on every card.
func validateVision(v model.VisionItem) error {
	if v.ImageURL == "" && v.Quote == "" {
		return invalid("an image or a quote is required")
	}
	err := validation.ValidateLength("quote", v.Quote, maxQuote)
	if err != nil {
		return invalid("%v", err)
	}
	return nil
}
