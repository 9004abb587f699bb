package service

import (
	"context"
	"testing"
	"time"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService(t *testing.T) {
	ctx := context.Background()

	t.Run("add validates text", func(t *testing.T) {
		svc := newTasks(t, newFakeRepo[model.Task, model.TaskPatch]())
		_, err := svc.Add(ctx, "   ", nil)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Empty(t, svc.Collection().Items())
	})

	t.Run("toggle and edit", func(t *testing.T) {
		repo := newFakeRepo[model.Task, model.TaskPatch](model.Task{ID: "t1", Text: "call mom", CreatedAt: testNow})
		svc := newTasks(t, repo)
		require.NoError(t, svc.Load(ctx))

		task, err := svc.Toggle(ctx, "t1")
		require.NoError(t, err)
		assert.True(t, task.Completed)

		text := "call dad"
		task, err = svc.Edit(ctx, "t1", model.TaskPatch{Text: &text, Reminder: model.Some(testNow.Add(time.Hour))})
		require.NoError(t, err)
		assert.Equal(t, "call dad", task.Text)
		require.NotNil(t, task.Reminder)

		svc.Collection().Wait()
		assert.Contains(t, repo.updated, "t1")
	})

	t.Run("missing task", func(t *testing.T) {
		svc := newTasks(t, newFakeRepo[model.Task, model.TaskPatch]())
		_, err := svc.Toggle(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newFakeRepo[model.Task, model.TaskPatch](model.Task{ID: "t1", Text: "x", CreatedAt: testNow})
		svc := newTasks(t, repo)
		require.NoError(t, svc.Load(ctx))

		require.NoError(t, svc.Delete(ctx, "t1"))
		require.NoError(t, svc.Delete(ctx, "t1"))
		svc.Collection().Wait()
		assert.Empty(t, svc.Collection().Items())
		assert.Equal(t, []string{"t1", "t1"}, repo.deleted)
	})
}
