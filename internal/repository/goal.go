package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

type GoalRepository interface {
	Repository[model.Goal, model.GoalPatch]
}

type goalRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	ImageURL    sql.NullString `db:"image_url"`
	Reminder    sql.NullString `db:"reminder"`
	CreatedAt   sql.NullString `db:"created_at"`
	Type        string         `db:"type"`
}

func (r goalRow) goal() model.Goal {
	return model.Goal{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description.String,
		ImageURL:    r.ImageURL.String,
		Reminder:    optTime(r.Reminder),
		CreatedAt:   timeOrNow(r.CreatedAt),
		Category:    model.GoalCategory(r.Type),
	}
}

type goalRepository struct {
	table
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{table{db: db, name: "goals"}}
}

func (r *goalRepository) All(ctx context.Context) ([]model.Goal, error) {
	var rows []goalRow
	query := `SELECT id, title, description, image_url, reminder, created_at, type
	          FROM goals ORDER BY created_at ASC, id ASC`

	err := r.selectAll(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	goals := make([]model.Goal, len(rows))
	for i, row := range rows {
		goals[i] = row.goal()
	}
	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, goal model.Goal) error {
	query := `INSERT INTO goals (id, title, description, image_url, reminder, created_at, type)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	return r.insert(ctx, query,
		goal.ID,
		goal.Title,
		nullText(goal.Description),
		nullText(goal.ImageURL),
		nullTime(goal.Reminder),
		isoTime(goal.CreatedAt),
		string(goal.Category),
	)
}

func (r *goalRepository) Update(ctx context.Context, id string, patch model.GoalPatch) error {
	var c changes
	if patch.Title != nil {
		c.set("title", *patch.Title)
	}
	if patch.Description != nil {
		c.set("description", nullText(*patch.Description))
	}
	if patch.ImageURL != nil {
		c.set("image_url", nullText(*patch.ImageURL))
	}
	if patch.Reminder.IsSet() {
		c.set("reminder", optTimeArg(patch.Reminder))
	}
	if patch.Category != nil {
		c.set("type", string(*patch.Category))
	}
	return r.update(ctx, id, c)
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
