package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

type VisionRepository interface {
	Repository[model.VisionItem, model.VisionPatch]
}

type visionRow struct {
	ID        string         `db:"id"`
	ImageURL  sql.NullString `db:"image_url"`
	Quote     sql.NullString `db:"quote"`
	CreatedAt sql.NullString `db:"created_at"`
}

type visionRepository struct {
	table
}

func NewVisionRepository(db *sqlx.DB) VisionRepository {
	return &visionRepository{table{db: db, name: "vision_board"}}
}

func (r *visionRepository) All(ctx context.Context) ([]model.VisionItem, error) {
	var rows []visionRow
	query := `SELECT id, image_url, quote, created_at FROM vision_board ORDER BY created_at ASC, id ASC`

	err := r.selectAll(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	items := make([]model.VisionItem, len(rows))
	for i, row := range rows {
		items[i] = model.VisionItem{
			ID:        row.ID,
			ImageURL:  row.ImageURL.String,
			Quote:     row.Quote.String,
			CreatedAt: timeOrNow(row.CreatedAt),
		}
	}
	return items, nil
}

func (r *visionRepository) Create(ctx context.Context, item model.VisionItem) error {
	query := `INSERT INTO vision_board (id, image_url, quote, created_at) VALUES ($1, $2, $3, $4)`

	return r.insert(ctx, query,
		item.ID,
		nullText(item.ImageURL),
		nullText(item.Quote),
		isoTime(item.CreatedAt),
	)
}

func (r *visionRepository) Update(ctx context.Context, id string, patch model.VisionPatch) error {
	var c changes
	if patch.ImageURL != nil {
		c.set("image_url", nullText(*patch.ImageURL))
	}
	if patch.Quote != nil {
		c.set("quote", nullText(*patch.Quote))
	}
	return r.update(ctx, id, c)
}

func (r *visionRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
