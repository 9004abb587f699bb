package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

type RecitationRepository interface {
	Repository[model.Recitation, model.RecitationPatch]
}

type recitationRow struct {
	ID        string         `db:"id"`
	Date      sql.NullString `db:"date"`
	Surah     string         `db:"surah"`
	Verses    string         `db:"verses"`
	Notes     sql.NullString `db:"notes"`
	Completed bool           `db:"completed"`
}

type recitationRepository struct {
	table
}

func NewRecitationRepository(db *sqlx.DB) RecitationRepository {
	return &recitationRepository{table{db: db, name: "quran"}}
}

func (r *recitationRepository) All(ctx context.Context) ([]model.Recitation, error) {
	var rows []recitationRow
	query := `SELECT id, date, surah, verses, notes, completed FROM quran ORDER BY date DESC, id ASC`

	err := r.selectAll(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	recitations := make([]model.Recitation, len(rows))
	for i, row := range rows {
		recitations[i] = model.Recitation{
			ID:        row.ID,
			Date:      timeOrNow(row.Date),
			Surah:     row.Surah,
			Verses:    row.Verses,
			Notes:     row.Notes.String,
			Completed: row.Completed,
		}
	}
	return recitations, nil
}

func (r *recitationRepository) Create(ctx context.Context, recitation model.Recitation) error {
	query := `INSERT INTO quran (id, date, surah, verses, notes, completed) VALUES ($1, $2, $3, $4, $5, $6)`

	return r.insert(ctx, query,
		recitation.ID,
		isoTime(recitation.Date),
		recitation.Surah,
		recitation.Verses,
		nullText(recitation.Notes),
		recitation.Completed,
	)
}

func (r *recitationRepository) Update(ctx context.Context, id string, patch model.RecitationPatch) error {
	var c changes
	if v, ok := patch.Date.Get(); ok {
		c.set("date", isoTime(v))
	}
	if patch.Surah != nil {
		c.set("surah", *patch.Surah)
	}
	if patch.Verses != nil {
		c.set("verses", *patch.Verses)
	}
	if patch.Notes != nil {
		c.set("notes", nullText(*patch.Notes))
	}
	if patch.Completed != nil {
		c.set("completed", *patch.Completed)
	}
	return r.update(ctx, id, c)
}

func (r *recitationRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
