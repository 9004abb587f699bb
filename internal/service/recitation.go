package service

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/repository"
	"github.com/nzoschke/productivity/internal/stats"
	"github.com/nzoschke/productivity/internal/validation"
)

type RecitationInput struct {
	Date      time.Time `json:"date"`
	Surah     string    `json:"surah"`
	Verses    string    `json:"verses"`
	Notes     string    `json:"notes"`
	Completed bool      `json:"completed"`
}

type RecitationService struct {
	repo        repository.RecitationRepository
	recitations *Collection[model.Recitation]
	clock       Clock
}

func NewRecitationService(repo repository.RecitationRepository, fallback *localstore.Store[model.Recitation], clock Clock) *RecitationService {
	return &RecitationService{
		repo:        repo,
		recitations: NewCollection("recitation", "recitations", fallback),
		clock:       clock,
	}
}

func (s *RecitationService) Collection() *Collection[model.Recitation] {
	return s.recitations
}

func (s *RecitationService) Load(ctx context.Context) error {
	return s.recitations.Load(ctx, s.repo.All)
}

// Add logs a recitation; a zero Date means now.
func (s *RecitationService) Add(ctx context.Context, in RecitationInput) (model.Recitation, error) {
	if in.Date.IsZero() {
		in.Date = s.clock.Now()
	}

	recitation := model.Recitation{
		ID:        model.NewID(),
		Date:      in.Date.UTC(),
		Surah:     strings.TrimSpace(in.Surah),
		Verses:    strings.TrimSpace(in.Verses),
		Notes:     in.Notes,
		Completed: in.Completed,
	}

	err := validateRecitation(recitation)
	if err != nil {
		return model.Recitation{}, err
	}

	err = s.recitations.Mutate(ctx, "add", func(list []model.Recitation) ([]model.Recitation, error) {
		return sortRecitations(append(list, recitation)), nil
	}, func(ctx context.Context) error {
		return s.repo.Create(ctx, recitation)
	})
	if err != nil {
		return model.Recitation{}, err
	}
	return recitation, nil
}

func (s *RecitationService) Edit(ctx context.Context, id string, patch model.RecitationPatch) (model.Recitation, error) {
	if patch.Surah != nil {
		surah := strings.TrimSpace(*patch.Surah)
		patch.Surah = &surah
	}
	if patch.Verses != nil {
		verses := strings.TrimSpace(*patch.Verses)
		patch.Verses = &verses
	}
	if v, ok := patch.Date.Get(); ok {
		patch.Date = model.Some(v.UTC())
	}

	var updated model.Recitation
	err := s.recitations.Mutate(ctx, "update", func(list []model.Recitation) ([]model.Recitation, error) {
		i := slices.IndexFunc(list, func(r model.Recitation) bool { return r.ID == id })
		if i < 0 {
			return nil, ErrNotFound
		}

		next := list[i]
		patch.Apply(&next)
		err := validateRecitation(next)
		if err != nil {
			return nil, err
		}
		list[i] = next
		updated = next
		return sortRecitations(list), nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, patch)
	})
	if err != nil {
		return model.Recitation{}, err
	}
	return updated, nil
}

func (s *RecitationService) Toggle(ctx context.Context, id string) (model.Recitation, error) {
	var completed bool
	return s.recitations.edit(ctx, "update", id, func(r *model.Recitation) error {
		r.Completed = !r.Completed
		completed = r.Completed
		return nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, model.RecitationPatch{Completed: &completed})
	})
}

func (s *RecitationService) Delete(ctx context.Context, id string) error {
	return s.recitations.remove(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func (s *RecitationService) Stats() stats.RecitationStats {
	return stats.Recitations(s.recitations.Items(), s.clock.Now())
}

func validateRecitation(r model.Recitation) error {
	err := validation.ValidateRequired("surah", r.Surah, maxTitle)
	if err != nil {
		return invalid("%v", err)
	}
	err = validation.ValidateRequired("verses", r.Verses, maxTitle)
	if err != nil {
		return invalid("%v", err)
	}
	return nil
}

func sortRecitations(list []model.Recitation) []model.Recitation {
	slices.SortStableFunc(list, func(a, b model.Recitation) int {
		return cmp.Or(b.Date.Compare(a.Date), cmp.Compare(a.ID, b.ID))
	})
	return list
}
