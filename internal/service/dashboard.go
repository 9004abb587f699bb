package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/metrics"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/stats"
	"golang.org/x/sync/errgroup"
)

type Dashboard struct {
	Date             string               `json:"date"`
	TotalTasks       int                  `json:"totalTasks"`
	OverdueTasks     []model.Task         `json:"overdueTasks"`
	TodayTasks       []model.Task         `json:"todayTasks"`
	CompletedToday   int                  `json:"completedToday"`
	ShortTermGoals   []model.Goal         `json:"shortTermGoals"`
	LongTermGoals    []model.Goal         `json:"longTermGoals"`
	ReadingBooks     []model.Book         `json:"readingBooks"`
	CompletedBooks   []model.Book         `json:"completedBooks"`
	PrayersToday     int                  `json:"prayersToday"`
	RecitationsToday int                  `json:"recitationsToday"`
	LatestRecitation *model.Recitation    `json:"latestRecitation,omitempty"`
	Finance          stats.FinanceSummary `json:"finance"`
	// Fallbacks names the collections read from the local store.
	Fallbacks []string `json:"fallbacks"`
}

// DashboardService reads six trackers straight from the backend in parallel.
// Each one that fails is read from its fallback store instead, so the
// dashboard itself never fails.
type DashboardService struct {
	tasks       *TaskService
	goals       *GoalService
	books       *BookService
	finances    *FinanceService
	prayers     *PrayerService
	recitations *RecitationService
	clock       Clock
}

func NewDashboardService(
	tasks *TaskService,
	goals *GoalService,
	books *BookService,
	finances *FinanceService,
	prayers *PrayerService,
	recitations *RecitationService,
	clock Clock,
) *DashboardService {
	return &DashboardService{
		tasks:       tasks,
		goals:       goals,
		books:       books,
		finances:    finances,
		prayers:     prayers,
		recitations: recitations,
		clock:       clock,
	}
}

func (s *DashboardService) Summary(ctx context.Context) Dashboard {
	var (
		tasks       []model.Task
		goals       []model.Goal
		books       []model.Book
		entries     []model.FinanceEntry
		days        []model.PrayerDay
		recitations []model.Recitation

		mu        sync.Mutex
		fallbacks []string
	)

	fellBack := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		fallbacks = append(fallbacks, name)
	}

	var g errgroup.Group
	g.Go(func() error {
		tasks = fetchOrFallback(ctx, "tasks", s.tasks.repo.All, s.tasks.tasks.Fallback(), fellBack)
		return nil
	})
	g.Go(func() error {
		goals = fetchOrFallback(ctx, "goals", s.goals.repo.All, s.goals.goals.Fallback(), fellBack)
		return nil
	})
	g.Go(func() error {
		books = fetchOrFallback(ctx, "books", s.books.repo.All, s.books.books.Fallback(), fellBack)
		return nil
	})
	g.Go(func() error {
		entries = fetchOrFallback(ctx, "finances", s.finances.repo.All, s.finances.entries.Fallback(), fellBack)
		return nil
	})
	g.Go(func() error {
		days = fetchOrFallback(ctx, "prayers", s.prayers.repo.All, s.prayers.days.Fallback(), fellBack)
		return nil
	})
	g.Go(func() error {
		recitations = fetchOrFallback(ctx, "recitations", s.recitations.repo.All, s.recitations.recitations.Fallback(), fellBack)
		return nil
	})
	_ = g.Wait()

	now := s.clock.Now()
	d := Dashboard{
		Date:             now.Format(model.DayLayout),
		TotalTasks:       len(tasks),
		OverdueTasks:     stats.OverdueTasks(tasks, now),
		TodayTasks:       stats.TodayTasks(tasks, now),
		CompletedToday:   stats.CompletedToday(tasks, now),
		PrayersToday:     stats.PrayerCountOn(days, now.Format(model.DayLayout)),
		RecitationsToday: stats.Recitations(recitations, now).TodayCount,
		LatestRecitation: stats.LatestRecitation(recitations),
		Finance:          stats.MonthlyFinance(entries, now.UTC().Format(stats.MonthLayout)),
		Fallbacks:        []string{},
	}
	d.ShortTermGoals, d.LongTermGoals = stats.GoalsByCategory(goals)
	d.ReadingBooks, d.CompletedBooks = stats.BooksByStatus(books)

	if fallbacks != nil {
		slices.Sort(fallbacks)
		d.Fallbacks = fallbacks
	}
	return d
}

func fetchOrFallback[T any](ctx context.Context, name string, fetch func(context.Context) ([]T, error), fallback *localstore.Store[T], fellBack func(string)) []T {
	items, err := fetch(ctx)
	if err == nil {
		if items == nil {
			return []T{}
		}
		return items
	}

	slog.Warn("dashboard reading from fallback store", "error", err, "entity", name)
	metrics.FallbackReads.WithLabelValues(name).Inc()
	fellBack(name)
	return fallback.Get()
}
