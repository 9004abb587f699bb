package service

import (
	"context"
	"strings"
	"time"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/repository"
	"github.com/nzoschke/productivity/internal/validation"
)

const maxTaskText = 500

type TaskService struct {
	repo  repository.TaskRepository
	tasks *Collection[model.Task]
	clock Clock
}

func NewTaskService(repo repository.TaskRepository, fallback *localstore.Store[model.Task], clock Clock) *TaskService {
	return &TaskService{
		repo:  repo,
		tasks: NewCollection("task", "tasks", fallback),
		clock: clock,
	}
}

func (s *TaskService) Collection() *Collection[model.Task] {
	return s.tasks
}

func (s *TaskService) Load(ctx context.Context) error {
	return s.tasks.Load(ctx, s.repo.All)
}

func (s *TaskService) Add(ctx context.Context, text string, reminder *time.Time) (model.Task, error) {
	text = strings.TrimSpace(text)
	err := validation.ValidateRequired("text", text, maxTaskText)
	if err != nil {
		return model.Task{}, invalid("%v", err)
	}

	task := model.Task{
		ID:        model.NewID(),
		Text:      text,
		Reminder:  reminder,
		CreatedAt: s.clock.Now().UTC(),
	}

	err = s.tasks.Mutate(ctx, "add", appendItem(task), func(ctx context.Context) error {
		return s.repo.Create(ctx, task)
	})
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Toggle(ctx context.Context, id string) (model.Task, error) {
	var completed bool
	return s.tasks.edit(ctx, "update", id, func(t *model.Task) error {
		t.Completed = !t.Completed
		completed = t.Completed
		return nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, model.TaskPatch{Completed: &completed})
	})
}

func (s *TaskService) Edit(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		err := validation.ValidateRequired("text", text, maxTaskText)
		if err != nil {
			return model.Task{}, invalid("%v", err)
		}
		patch.Text = &text
	}

	if patch.IsEmpty() {
		task, ok := s.tasks.Find(id)
		if !ok {
			return model.Task{}, ErrNotFound
		}
		return task, nil
	}

	return s.tasks.edit(ctx, "update", id, func(t *model.Task) error {
		patch.Apply(t)
		return nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, patch)
	})
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.remove(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}
