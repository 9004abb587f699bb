package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

type TaskRepository interface {
	Repository[model.Task, model.TaskPatch]
}

type taskRow struct {
	ID        string         `db:"id"`
	Text      string         `db:"text"`
	Completed bool           `db:"completed"`
	Reminder  sql.NullString `db:"reminder"`
	CreatedAt sql.NullString `db:"created_at"`
}

func (r taskRow) task() model.Task {
	return model.Task{
		ID:        r.ID,
		Text:      r.Text,
		Completed: r.Completed,
		Reminder:  optTime(r.Reminder),
		CreatedAt: timeOrNow(r.CreatedAt),
	}
}

type taskRepository struct {
	table
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepository{table{db: db, name: "tasks"}}
}

func (r *taskRepository) All(ctx context.Context) ([]model.Task, error) {
	var rows []taskRow
	query := `SELECT id, text, completed, reminder, created_at FROM tasks ORDER BY created_at ASC, id ASC`

	err := r.selectAll(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.task()
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task model.Task) error {
	query := `INSERT INTO tasks (id, text, completed, reminder, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	return r.insert(ctx, query,
		task.ID,
		task.Text,
		task.Completed,
		nullTime(task.Reminder),
		isoTime(task.CreatedAt),
	)
}

func (r *taskRepository) Update(ctx context.Context, id string, patch model.TaskPatch) error {
	var c changes
	if patch.Text != nil {
		c.set("text", *patch.Text)
	}
	if patch.Completed != nil {
		c.set("completed", *patch.Completed)
	}
	if patch.Reminder.IsSet() {
		c.set("reminder", optTimeArg(patch.Reminder))
	}
	return r.update(ctx, id, c)
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
