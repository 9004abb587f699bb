package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookService(t *testing.T) {
	ctx := context.Background()
	clock := FixedClock(testNow)

	t.Run("add requires title and author", func(t *testing.T) {
		svc := NewBookService(newFakeRepo[model.Book, model.BookPatch](), store[model.Book](t, localstore.KeyBooks), clock)
		_, err := svc.Add(ctx, BookInput{Title: "Dune"})
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("add stamps dates", func(t *testing.T) {
		svc := NewBookService(newFakeRepo[model.Book, model.BookPatch](), store[model.Book](t, localstore.KeyBooks), clock)

		book, err := svc.Add(ctx, BookInput{Title: "Dune", Author: "Herbert"})
		require.NoError(t, err)
		assert.Equal(t, model.BookInProgress, book.Status)
		require.NotNil(t, book.StartedAt)
		assert.Nil(t, book.CompletedAt)

		done, err := svc.Add(ctx, BookInput{Title: "Emma", Author: "Austen", Status: model.BookCompleted})
		require.NoError(t, err)
		require.NotNil(t, done.CompletedAt)
		assert.True(t, done.CompletedAt.Equal(testNow))
	})

	t.Run("completing stamps completion once", func(t *testing.T) {
		repo := newFakeRepo[model.Book, model.BookPatch](model.Book{ID: "b1", Title: "Dune", Author: "Herbert", Status: model.BookInProgress})
		svc := NewBookService(repo, store[model.Book](t, localstore.KeyBooks), clock)
		require.NoError(t, svc.Load(ctx))

		status := model.BookCompleted
		book, err := svc.Edit(ctx, "b1", model.BookPatch{Status: &status})
		require.NoError(t, err)
		require.NotNil(t, book.CompletedAt)
		require.NotNil(t, book.StartedAt, "missing start date is filled in")

		book, err = svc.MarkCompleted(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, model.BookCompleted, book.Status)

		svc.Collection().Wait()
		assert.Equal(t, model.BookCompleted, *repo.updated["b1"].Status)
	})
}

func TestFinanceService(t *testing.T) {
	ctx := context.Background()
	svc := NewFinanceService(newFakeRepo[model.FinanceEntry, model.FinancePatch](), store[model.FinanceEntry](t, localstore.KeyFinances), FixedClock(testNow))

	_, err := svc.Add(ctx, FinanceInput{Type: model.FinanceExpense, Amount: -5, Description: "coffee"})
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = svc.Add(ctx, FinanceInput{Type: "gift", Amount: 5, Description: "coffee"})
	assert.ErrorIs(t, err, ErrInvalid)

	may := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []FinanceInput{
		{Type: model.FinanceSalary, Amount: 1000, Description: "pay", Date: may},
		{Type: model.FinanceExpense, Amount: 200, Description: "rent", Date: may.AddDate(0, 0, 2)},
		{Type: model.FinanceSavings, Amount: 100, Description: "jar", Date: may.AddDate(0, 0, 1)},
		{Type: model.FinanceInvestment, Amount: 50, Description: "fund", Date: may},
		{Type: model.FinanceExpense, Amount: 999, Description: "april", Date: may.AddDate(0, 0, -3)},
	}
	for _, in := range entries {
		_, err := svc.Add(ctx, in)
		require.NoError(t, err)
	}

	items := svc.Collection().Items()
	assert.Equal(t, "rent", items[0].Description, "newest first")

	summary, err := svc.Month("2024-05")
	require.NoError(t, err)
	assert.InDelta(t, 650, summary.Net, 0.001)
	assert.Len(t, summary.Entries, 4)

	_, err = svc.Month("May")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestPrayerService(t *testing.T) {
	ctx := context.Background()
	repo := &fakePrayerRepo{}
	svc := NewPrayerService(repo, store[model.PrayerDay](t, localstore.KeyPrayers), FixedClock(testNow))
	require.NoError(t, svc.Load(ctx))

	day, err := svc.Day("2024-05-15")
	require.NoError(t, err)
	assert.Equal(t, 0, day.Count())

	day, err = svc.Toggle(ctx, "2024-05-15", model.Fajr)
	require.NoError(t, err)
	assert.True(t, day.Fajr)
	day, err = svc.Toggle(ctx, "2024-05-15", model.Isha)
	require.NoError(t, err)
	assert.Equal(t, 2, day.Count())

	week := svc.Week(time.Time{})
	assert.Equal(t, 2, week.Total)

	day, err = svc.Clear(ctx, "2024-05-15")
	require.NoError(t, err)
	assert.Equal(t, 0, day.Count())

	_, err = svc.Toggle(ctx, "15/05/2024", model.Fajr)
	assert.ErrorIs(t, err, ErrInvalid)

	svc.Collection().Wait()
	assert.Equal(t, 3, repo.calls)
	assert.Len(t, svc.Collection().Items(), 1)
}

func TestNoteServiceMovesEditedToTop(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[model.Note, model.NotePatch](
		model.Note{ID: "n2", Title: "newer", UpdatedAt: testNow.Add(-time.Hour)},
		model.Note{ID: "n1", Title: "older", UpdatedAt: testNow.Add(-2 * time.Hour)},
	)
	svc := NewNoteService(repo, store[model.Note](t, localstore.KeyNotes), FixedClock(testNow))
	require.NoError(t, svc.Load(ctx))

	content := "updated"
	note, err := svc.Edit(ctx, "n1", model.NotePatch{Content: &content})
	require.NoError(t, err)
	assert.True(t, note.UpdatedAt.Equal(testNow))

	items := svc.Collection().Items()
	assert.Equal(t, "n1", items[0].ID)

	blank := " "
	_, err = svc.Edit(ctx, "n1", model.NotePatch{Title: &blank})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestRecitationService(t *testing.T) {
	ctx := context.Background()
	svc := NewRecitationService(newFakeRepo[model.Recitation, model.RecitationPatch](), store[model.Recitation](t, localstore.KeyRecitations), FixedClock(testNow))

	_, err := svc.Add(ctx, RecitationInput{Surah: "Al-Fatiha"})
	assert.ErrorIs(t, err, ErrInvalid)

	r, err := svc.Add(ctx, RecitationInput{Surah: "Al-Fatiha", Verses: "1-7"})
	require.NoError(t, err)
	assert.True(t, r.Date.Equal(testNow))

	_, err = svc.Add(ctx, RecitationInput{Surah: "Al-Baqarah", Verses: "1-5", Date: testNow.AddDate(0, 0, -1)})
	require.NoError(t, err)

	r, err = svc.Toggle(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, r.Completed)

	s := svc.Stats()
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 50, s.CompletionRate)
	assert.Equal(t, 1, s.TodayCount)
	assert.True(t, s.LoggedToday)
}

func TestVisionService(t *testing.T) {
	ctx := context.Background()
	svc := NewVisionService(newFakeRepo[model.VisionItem, model.VisionPatch](), store[model.VisionItem](t, localstore.KeyVision), FixedClock(testNow))

	_, err := svc.Add(ctx, "", "  ")
	assert.ErrorIs(t, err, ErrInvalid)

	item, err := svc.Add(ctx, "https://drive.google.com/file/d/abc123/view?usp=sharing", "")
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=abc123", item.ImageURL)
}

func TestDashboardFallsBackPerTracker(t *testing.T) {
	ctx := context.Background()
	clock := FixedClock(testNow)

	taskRepo := newFakeRepo[model.Task, model.TaskPatch]()
	taskRepo.fail(errors.New("offline"))
	taskStore := store[model.Task](t, localstore.KeyTasks)
	overdue := testNow.Add(-time.Hour)
	require.NoError(t, taskStore.Set([]model.Task{{ID: "t1", Text: "saved", Reminder: &overdue, CreatedAt: testNow}}))

	prayers := &fakePrayerRepo{days: map[string]model.PrayerDay{
		"2024-05-15": {ID: "2024-05-15", Date: "2024-05-15", Fajr: true, Dhuhr: true},
	}}

	d := NewDashboardService(
		NewTaskService(taskRepo, taskStore, clock),
		NewGoalService(newFakeRepo[model.Goal, model.GoalPatch](model.Goal{ID: "g1", Category: model.GoalLongTerm}), store[model.Goal](t, localstore.KeyGoals), clock),
		NewBookService(newFakeRepo[model.Book, model.BookPatch](), store[model.Book](t, localstore.KeyBooks), clock),
		NewFinanceService(newFakeRepo[model.FinanceEntry, model.FinancePatch](
			model.FinanceEntry{ID: "f1", Type: model.FinanceSalary, Amount: 100, Date: testNow},
		), store[model.FinanceEntry](t, localstore.KeyFinances), clock),
		NewPrayerService(prayers, store[model.PrayerDay](t, localstore.KeyPrayers), clock),
		NewRecitationService(newFakeRepo[model.Recitation, model.RecitationPatch](), store[model.Recitation](t, localstore.KeyRecitations), clock),
		clock,
	).Summary(ctx)

	assert.Equal(t, "2024-05-15", d.Date)
	assert.Equal(t, []string{"tasks"}, d.Fallbacks)
	assert.Equal(t, 1, d.TotalTasks)
	require.Len(t, d.OverdueTasks, 1)
	assert.Len(t, d.TodayTasks, 1)
	assert.Len(t, d.LongTermGoals, 1)
	assert.Equal(t, 2, d.PrayersToday)
	assert.InDelta(t, 100, d.Finance.Net, 0.001)
	assert.Nil(t, d.LatestRecitation)
}

func TestGoalService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[model.Goal, model.GoalPatch]()
	svc := NewGoalService(repo, store[model.Goal](t, localstore.KeyGoals), FixedClock(testNow))

	_, err := svc.Add(ctx, GoalInput{Title: "  "})
	assert.ErrorIs(t, err, ErrInvalid)

	goal, err := svc.Add(ctx, GoalInput{Title: "Run a marathon", ImageURL: "https://drive.google.com/open?id=xyz789"})
	require.NoError(t, err)
	assert.Equal(t, model.GoalShortTerm, goal.Category)
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=xyz789", goal.ImageURL)

	require.NoError(t, svc.Collection().MarkImageFailed(goal.ID))

	url := "https://images.unsplash.com/photo-1.jpg"
	edited, err := svc.Edit(ctx, goal.ID, model.GoalPatch{ImageURL: &url})
	require.NoError(t, err)
	assert.Equal(t, url, edited.ImageURL)
	assert.False(t, svc.Collection().ImageFailed(goal.ID))

	same, err := svc.Edit(ctx, goal.ID, model.GoalPatch{})
	require.NoError(t, err)
	assert.Equal(t, edited, same)

	_, err = svc.Edit(ctx, "missing", model.GoalPatch{ImageURL: &url})
	assert.ErrorIs(t, err, ErrNotFound)

	svc.Collection().Wait()
	assert.Len(t, repo.created, 1)
	assert.Contains(t, repo.updated, goal.ID)
}
