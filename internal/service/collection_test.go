package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTasks(t *testing.T, repo *fakeRepo[model.Task, model.TaskPatch]) *TaskService {
	t.Helper()
	return NewTaskService(repo, store[model.Task](t, localstore.KeyTasks), FixedClock(testNow))
}

func TestCollectionFailedWriteKeepsLocalState(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[model.Task, model.TaskPatch]()
	svc := newTasks(t, repo)
	require.NoError(t, svc.Load(ctx))

	repo.fail(errors.New("connection refused"))
	task, err := svc.Add(ctx, "water plants", nil)
	require.NoError(t, err)
	svc.Collection().Wait()

	items, banner := svc.Collection().Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, task.ID, items[0].ID)
	assert.Equal(t, "failed to add task in backend", banner)

	svc.Collection().DismissBanner()
	assert.Empty(t, svc.Collection().Banner())
}

func TestCollectionLoadFallsBackToSnapshot(t *testing.T) {
	ctx := context.Background()
	fallback := store[model.Task](t, localstore.KeyTasks)
	require.NoError(t, fallback.Set([]model.Task{{ID: "1", Text: "saved", CreatedAt: testNow}}))

	repo := newFakeRepo[model.Task, model.TaskPatch]()
	repo.fail(errors.New("offline"))
	svc := NewTaskService(repo, fallback, FixedClock(testNow))

	err := svc.Load(ctx)
	require.Error(t, err)

	items, banner := svc.Collection().Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, "saved", items[0].Text)
	assert.Equal(t, "failed to load tasks from backend", banner)
}

func TestCollectionReloadClearsBanner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[model.Task, model.TaskPatch](model.Task{ID: "1", Text: "remote", CreatedAt: testNow})
	svc := newTasks(t, repo)

	repo.fail(errors.New("offline"))
	require.Error(t, svc.Load(ctx))
	assert.Equal(t, "failed to load tasks from backend", svc.Collection().Banner())

	repo.fail(nil)
	require.NoError(t, svc.Load(ctx))

	items, banner := svc.Collection().Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, "remote", items[0].Text)
	assert.Empty(t, banner)
}

func TestCollectionMirrorsToFallback(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[model.Task, model.TaskPatch](model.Task{ID: "a", Text: "one", CreatedAt: testNow})
	svc := newTasks(t, repo)
	require.NoError(t, svc.Load(ctx))
	assert.Len(t, svc.Collection().Fallback().Get(), 1)

	_, err := svc.Add(ctx, "two", nil)
	require.NoError(t, err)
	svc.Collection().Wait()

	saved := svc.Collection().Fallback().Get()
	require.Len(t, saved, 2)
	assert.Equal(t, "two", saved[1].Text)
	assert.Len(t, repo.created, 1)
}

func TestCollectionImageFailed(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[model.Goal, model.GoalPatch](model.Goal{ID: "g1", Title: "Run", Category: model.GoalShortTerm})
	svc := NewGoalService(repo, store[model.Goal](t, localstore.KeyGoals), FixedClock(testNow))
	require.NoError(t, svc.Load(ctx))

	assert.ErrorIs(t, svc.Collection().MarkImageFailed("missing"), ErrNotFound)
	require.NoError(t, svc.Collection().MarkImageFailed("g1"))
	assert.True(t, svc.Collection().ImageFailed("g1"))
	assert.Equal(t, []string{"g1"}, svc.Collection().FailedImages())

	url := "https://example.com/new.png"
	_, err := svc.Edit(ctx, "g1", model.GoalPatch{ImageURL: &url})
	require.NoError(t, err)
	svc.Collection().Wait()
	assert.False(t, svc.Collection().ImageFailed("g1"))
}
