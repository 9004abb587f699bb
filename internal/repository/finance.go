package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

type FinanceRepository interface {
	Repository[model.FinanceEntry, model.FinancePatch]
}

type financeRow struct {
	ID          string         `db:"id"`
	Type        string         `db:"type"`
	Amount      float64        `db:"amount"`
	Description string         `db:"description"`
	Date        sql.NullString `db:"date"`
	Category    sql.NullString `db:"category"`
}

type financeRepository struct {
	table
}

func NewFinanceRepository(db *sqlx.DB) FinanceRepository {
	return &financeRepository{table{db: db, name: "finances"}}
}

// All returns the newest entries first.
func (r *financeRepository) All(ctx context.Context) ([]model.FinanceEntry, error) {
	var rows []financeRow
	query := `SELECT id, type, amount, description, date, category FROM finances ORDER BY date DESC, id ASC`

	err := r.selectAll(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	entries := make([]model.FinanceEntry, len(rows))
	for i, row := range rows {
		entries[i] = model.FinanceEntry{
			ID:          row.ID,
			Type:        model.FinanceType(row.Type),
			Amount:      row.Amount,
			Description: row.Description,
			Date:        timeOrNow(row.Date),
			Category:    row.Category.String,
		}
	}
	return entries, nil
}

func (r *financeRepository) Create(ctx context.Context, entry model.FinanceEntry) error {
	query := `INSERT INTO finances (id, type, amount, description, date, category)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	return r.insert(ctx, query,
		entry.ID,
		string(entry.Type),
		entry.Amount,
		entry.Description,
		isoTime(entry.Date),
		nullText(entry.Category),
	)
}

func (r *financeRepository) Update(ctx context.Context, id string, patch model.FinancePatch) error {
	var c changes
	if patch.Type != nil {
		c.set("type", string(*patch.Type))
	}
	if patch.Amount != nil {
		c.set("amount", *patch.Amount)
	}
	if patch.Description != nil {
		c.set("description", *patch.Description)
	}
	if v, ok := patch.Date.Get(); ok {
		c.set("date", isoTime(v))
	}
	if patch.Category != nil {
		c.set("category", nullText(*patch.Category))
	}
	return r.update(ctx, id, c)
}

func (r *financeRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
