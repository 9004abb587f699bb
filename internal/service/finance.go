package service

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/repository"
	"github.com/nzoschke/productivity/internal/stats"
	"github.com/nzoschke/productivity/internal/validation"
)

type FinanceInput struct {
	Type        model.FinanceType `json:"type"`
	Amount      float64           `json:"amount"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Category    string            `json:"category"`
}

type FinanceService struct {
	repo    repository.FinanceRepository
	entries *Collection[model.FinanceEntry]
	clock   Clock
}

func NewFinanceService(repo repository.FinanceRepository, fallback *localstore.Store[model.FinanceEntry], clock Clock) *FinanceService {
	return &FinanceService{
		repo:    repo,
		entries: NewCollection("finance entry", "finances", fallback),
		clock:   clock,
	}
}

func (s *FinanceService) Collection() *Collection[model.FinanceEntry] {
	return s.entries
}

func (s *FinanceService) Load(ctx context.Context) error {
	return s.entries.Load(ctx, s.repo.All)
}

// Add records an entry; a zero Date means now.
func (s *FinanceService) Add(ctx context.Context, in FinanceInput) (model.FinanceEntry, error) {
	if in.Date.IsZero() {
		in.Date = s.clock.Now()
	}

	entry := model.FinanceEntry{
		ID:          model.NewID(),
		Type:        in.Type,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date.UTC(),
		Category:    strings.TrimSpace(in.Category),
	}

	err := validateFinance(entry)
	if err != nil {
		return model.FinanceEntry{}, err
	}

	err = s.entries.Mutate(ctx, "add", func(entries []model.FinanceEntry) ([]model.FinanceEntry, error) {
		return sortFinances(append(entries, entry)), nil
	}, func(ctx context.Context) error {
		return s.repo.Create(ctx, entry)
	})
	if err != nil {
		return model.FinanceEntry{}, err
	}
	return entry, nil
}

func (s *FinanceService) Edit(ctx context.Context, id string, patch model.FinancePatch) (model.FinanceEntry, error) {
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}
	if v, ok := patch.Date.Get(); ok {
		patch.Date = model.Some(v.UTC())
	}

	var updated model.FinanceEntry
	err := s.entries.Mutate(ctx, "update", func(entries []model.FinanceEntry) ([]model.FinanceEntry, error) {
		i := slices.IndexFunc(entries, func(e model.FinanceEntry) bool { return e.ID == id })
		if i < 0 {
			return nil, ErrNotFound
		}

		next := entries[i]
		patch.Apply(&next)
		err := validateFinance(next)
		if err != nil {
			return nil, err
		}
		entries[i] = next
		updated = next
		return sortFinances(entries), nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, patch)
	})
	if err != nil {
		return model.FinanceEntry{}, err
	}
	return updated, nil
}

func (s *FinanceService) Delete(ctx context.Context, id string) error {
	return s.entries.remove(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

// Month summarizes month (YYYY-MM); an empty month means the current one.
func (s *FinanceService) Month(month string) (stats.FinanceSummary, error) {
	if month == "" {
		month = s.clock.Now().UTC().Format(stats.MonthLayout)
	}
	_, err := time.Parse(stats.MonthLayout, month)
	if err != nil {
		return stats.FinanceSummary{}, invalid("month must be YYYY-MM")
	}
	return stats.MonthlyFinance(s.entries.Items(), month), nil
}

func validateFinance(e model.FinanceEntry) error {
	if !e.Type.Valid() {
		return invalid("unknown finance type %q", e.Type)
	}
	if e.Amount < 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return invalid("amount must be a non-negative number")
	}
	err := validation.ValidateRequired("description", e.Description, maxTitle)
	if err != nil {
		return invalid("%v", err)
	}
	return nil
}

func sortFinances(entries []model.FinanceEntry) []model.FinanceEntry {
	slices.SortStableFunc(entries, func(a, b model.FinanceEntry) int {
		return cmp.Or(b.Date.Compare(a.Date), cmp.Compare(a.ID, b.ID))
	})
	return entries
}
