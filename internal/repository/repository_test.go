package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/db"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	return conn
}

func ptr[T any](v T) *T { return &v }

func TestTaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(newTestDB(t))

	reminder := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	task := model.Task{
		ID:        "1700000000000",
		Text:      "buy milk",
		Reminder:  &reminder,
		CreatedAt: time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, task))

	tasks, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, "buy milk", tasks[0].Text)
	assert.False(t, tasks[0].Completed)
	require.NotNil(t, tasks[0].Reminder)
	assert.True(t, reminder.Equal(*tasks[0].Reminder))
	assert.True(t, task.CreatedAt.Equal(tasks[0].CreatedAt))
}

func TestTaskOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(newTestDB(t))

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, model.Task{ID: "b", Text: "second", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, model.Task{ID: "a", Text: "first", CreatedAt: base}))

	tasks, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Text)
	assert.Equal(t, "second", tasks[1].Text)
}

func TestTaskDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, model.Task{ID: "1", Text: "x", CreatedAt: time.Now()}))
	require.NoError(t, repo.Delete(ctx, "1"))

	tasks, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	t.Run("missing row", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, "1"))
	})
}

func TestTaskPartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(newTestDB(t))

	reminder := time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, model.Task{ID: "1", Text: "call mom", Reminder: &reminder, CreatedAt: time.Now()}))

	require.NoError(t, repo.Update(ctx, "1", model.TaskPatch{Completed: ptr(true)}))

	tasks, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
	assert.Equal(t, "call mom", tasks[0].Text)
	require.NotNil(t, tasks[0].Reminder)

	require.NoError(t, repo.Update(ctx, "1", model.TaskPatch{Reminder: model.Null[time.Time]()}))
	tasks, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Nil(t, tasks[0].Reminder)
	assert.True(t, tasks[0].Completed)
}

func TestUpdateMissingRow(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(newTestDB(t))

	tests := []struct {
		name  string
		patch model.TaskPatch
	}{
		{name: "with fields", patch: model.TaskPatch{Text: ptr("x")}},
		{name: "empty patch", patch: model.TaskPatch{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Update(ctx, "nope", tt.patch)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)

			var remote *RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, "tasks", remote.Table)
		})
	}
}

func TestAdapterUnavailable(t *testing.T) {
	ctx := context.Background()

	_, err := NewTaskRepository(nil).All(ctx)
	assert.ErrorIs(t, err, ErrAdapterUnavailable)

	err = NewNoteRepository(nil).Create(ctx, model.Note{ID: "1"})
	assert.ErrorIs(t, err, ErrAdapterUnavailable)

	err = NewPrayerRepository(nil).Upsert(ctx, model.NewPrayerDay("2024-01-01"))
	assert.ErrorIs(t, err, ErrAdapterUnavailable)
}

func TestGoalOptionalFields(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, model.Goal{
		ID:        "1",
		Title:     "run a marathon",
		CreatedAt: time.Now(),
		Category:  model.GoalLongTerm,
	}))

	goals, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "", goals[0].Description)
	assert.Equal(t, "", goals[0].ImageURL)
	assert.Nil(t, goals[0].Reminder)
	assert.Equal(t, model.GoalLongTerm, goals[0].Category)

	short := model.GoalShortTerm
	require.NoError(t, repo.Update(ctx, "1", model.GoalPatch{Category: &short, ImageURL: ptr("https://example.com/a.png")}))
	goals, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.GoalShortTerm, goals[0].Category)
	assert.Equal(t, "https://example.com/a.png", goals[0].ImageURL)
	assert.Equal(t, "run a marathon", goals[0].Title)
}

func TestNotesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository(newTestDB(t))

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, model.Note{ID: "1", Title: "old", CreatedAt: base, UpdatedAt: base}))
	require.NoError(t, repo.Create(ctx, model.Note{ID: "2", Title: "new", CreatedAt: base, UpdatedAt: base.Add(time.Hour)}))

	notes, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "new", notes[0].Title)

	require.NoError(t, repo.Update(ctx, "1", model.NotePatch{UpdatedAt: model.Some(base.Add(2 * time.Hour))}))
	notes, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", notes[0].Title)
}

func TestBookDates(t *testing.T) {
	ctx := context.Background()
	repo := NewBookRepository(newTestDB(t))

	started := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, model.Book{
		ID:        "1",
		Title:     "Dune",
		Author:    "Frank Herbert",
		Status:    model.BookInProgress,
		StartedAt: &started,
	}))

	done := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	status := model.BookCompleted
	require.NoError(t, repo.Update(ctx, "1", model.BookPatch{Status: &status, CompletedAt: model.Some(done)}))

	books, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, model.BookCompleted, books[0].Status)
	require.NotNil(t, books[0].StartedAt)
	assert.True(t, started.Equal(*books[0].StartedAt))
	require.NotNil(t, books[0].CompletedAt)
	assert.True(t, done.Equal(*books[0].CompletedAt))
}

func TestFinanceAmountAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewFinanceRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, model.FinanceEntry{
		ID: "1", Type: model.FinanceSalary, Amount: 1000.25, Description: "pay",
		Date: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repo.Create(ctx, model.FinanceEntry{
		ID: "2", Type: model.FinanceExpense, Amount: 12.5, Description: "lunch",
		Date: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC), Category: "food",
	}))

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "lunch", entries[0].Description)
	assert.Equal(t, "food", entries[0].Category)
	assert.InDelta(t, 1000.25, entries[1].Amount, 1e-9)
	assert.Equal(t, "", entries[1].Category)

	t.Run("negative amount rejected by schema", func(t *testing.T) {
		err := repo.Create(ctx, model.FinanceEntry{ID: "3", Type: model.FinanceExpense, Amount: -1, Description: "x", Date: time.Now()})
		var remote *RemoteError
		assert.True(t, errors.As(err, &remote))
	})
}

func TestPrayerUpsertTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewPrayerRepository(newTestDB(t))

	day := model.NewPrayerDay("2024-01-01")
	day.Fajr = true
	require.NoError(t, repo.Upsert(ctx, day))

	day.Fajr = false
	day.Isha = true
	require.NoError(t, repo.Upsert(ctx, day))

	days, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-01-01", days[0].ID)
	assert.False(t, days[0].Fajr)
	assert.True(t, days[0].Isha)
	assert.Equal(t, 1, days[0].Count())
}

func TestRecitationToggle(t *testing.T) {
	ctx := context.Background()
	repo := NewRecitationRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, model.Recitation{
		ID: "1", Date: time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC), Surah: "Al-Fatiha", Verses: "1-7",
	}))
	require.NoError(t, repo.Update(ctx, "1", model.RecitationPatch{Completed: ptr(true), Notes: ptr("with tajweed")}))

	list, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Completed)
	assert.Equal(t, "with tajweed", list[0].Notes)
	assert.Equal(t, "1-7", list[0].Verses)
}

func TestVisionClearQuote(t *testing.T) {
	ctx := context.Background()
	repo := NewVisionRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, model.VisionItem{ID: "1", Quote: "stay hungry", ImageURL: "https://images.unsplash.com/x", CreatedAt: time.Now()}))
	require.NoError(t, repo.Update(ctx, "1", model.VisionPatch{Quote: ptr("")}))

	items, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Quote)
	assert.Equal(t, "https://images.unsplash.com/x", items[0].ImageURL)
}

func TestChangesQuery(t *testing.T) {
	var c changes
	c.set("a", 1)
	c.set("b", "x")

	query, args := c.query("t", "id1")
	assert.Equal(t, "UPDATE t SET a = $1, b = $2 WHERE id = $3", query)
	assert.Equal(t, []any{1, "x", "id1"}, args)
}
