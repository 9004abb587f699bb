package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

type NoteRepository interface {
	Repository[model.Note, model.NotePatch]
}

type noteRow struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Content   sql.NullString `db:"content"`
	CreatedAt sql.NullString `db:"created_at"`
	UpdatedAt sql.NullString `db:"updated_at"`
}

type noteRepository struct {
	table
}

func NewNoteRepository(db *sqlx.DB) NoteRepository {
	return &noteRepository{table{db: db, name: "notes"}}
}

// All returns the most recently edited notes first.
func (r *noteRepository) All(ctx context.Context) ([]model.Note, error) {
	var rows []noteRow
	query := `SELECT id, title, content, created_at, updated_at FROM notes ORDER BY updated_at DESC, id ASC`

	err := r.selectAll(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	notes := make([]model.Note, len(rows))
	for i, row := range rows {
		notes[i] = model.Note{
			ID:        row.ID,
			Title:     row.Title,
			Content:   row.Content.String,
			CreatedAt: timeOrNow(row.CreatedAt),
			UpdatedAt: timeOrNow(row.UpdatedAt),
		}
	}
	return notes, nil
}

func (r *noteRepository) Create(ctx context.Context, note model.Note) error {
	query := `INSERT INTO notes (id, title, content, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`

	return r.insert(ctx, query,
		note.ID,
		note.Title,
		nullText(note.Content),
		isoTime(note.CreatedAt),
		isoTime(note.UpdatedAt),
	)
}

func (r *noteRepository) Update(ctx context.Context, id string, patch model.NotePatch) error {
	var c changes
	if patch.Title != nil {
		c.set("title", *patch.Title)
	}
	if patch.Content != nil {
		c.set("content", nullText(*patch.Content))
	}
	// updated_at is mandatory: a null in the patch is ignored
	if v, ok := patch.UpdatedAt.Get(); ok {
		c.set("updated_at", isoTime(v))
	}
	return r.update(ctx, id, c)
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
