package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/repository"
	"github.com/nzoschke/productivity/internal/stats"
)

// PrayerService tracks one record per calendar day. A day without a record
// has nothing marked; every change upserts the complete day.
type PrayerService struct {
	repo  repository.PrayerRepository
	days  *Collection[model.PrayerDay]
	clock Clock
}

func NewPrayerService(repo repository.PrayerRepository, fallback *localstore.Store[model.PrayerDay], clock Clock) *PrayerService {
	return &PrayerService{
		repo:  repo,
		days:  NewCollection("prayer record", "prayers", fallback),
		clock: clock,
	}
}

func (s *PrayerService) Collection() *Collection[model.PrayerDay] {
	return s.days
}

func (s *PrayerService) Load(ctx context.Context) error {
	return s.days.Load(ctx, s.repo.All)
}

// Day returns the record for date, or an empty one.
func (s *PrayerService) Day(date string) (model.PrayerDay, error) {
	if !model.ValidDay(date) {
		return model.PrayerDay{}, invalid("date must be YYYY-MM-DD")
	}
	day, ok := s.days.Find(date)
	if !ok {
		return model.NewPrayerDay(date), nil
	}
	return day, nil
}

func (s *PrayerService) Toggle(ctx context.Context, date string, prayer model.Prayer) (model.PrayerDay, error) {
	return s.put(ctx, date, func(d *model.PrayerDay) {
		d.Set(prayer, !d.Done(prayer))
	})
}

// Clear unmarks every prayer of date.
func (s *PrayerService) Clear(ctx context.Context, date string) (model.PrayerDay, error) {
	return s.put(ctx, date, func(d *model.PrayerDay) {
		*d = model.NewPrayerDay(d.Date)
	})
}

// Week summarizes the Monday-starting week containing ref; a zero ref means now.
func (s *PrayerService) Week(ref time.Time) stats.PrayerWeek {
	if ref.IsZero() {
		ref = s.clock.Now()
	}
	return stats.WeeklyPrayer(s.days.Items(), ref)
}

func (s *PrayerService) put(ctx context.Context, date string, fn func(*model.PrayerDay)) (model.PrayerDay, error) {
	if !model.ValidDay(date) {
		return model.PrayerDay{}, invalid("date must be YYYY-MM-DD")
	}

	var day model.PrayerDay
	err := s.days.Mutate(ctx, "update", func(days []model.PrayerDay) ([]model.PrayerDay, error) {
		i := slices.IndexFunc(days, func(d model.PrayerDay) bool { return d.Date == date })
		if i < 0 {
			days = append(days, model.NewPrayerDay(date))
			i = len(days) - 1
		}

		fn(&days[i])
		day = days[i]

		slices.SortFunc(days, func(a, b model.PrayerDay) int {
			return strings.Compare(a.Date, b.Date)
		})
		return days, nil
	}, func(ctx context.Context) error {
		return s.repo.Upsert(ctx, day)
	})
	if err != nil {
		return model.PrayerDay{}, err
	}
	return day, nil
}
