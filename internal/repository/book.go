package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nzoschke/productivity/internal/model"
)

type BookRepository interface {
	Repository[model.Book, model.BookPatch]
}

type bookRow struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Author        string         `db:"author"`
	Status        string         `db:"status"`
	ImageURL      sql.NullString `db:"image_url"`
	Notes         sql.NullString `db:"notes"`
	StartedDate   sql.NullString `db:"started_date"`
	CompletedDate sql.NullString `db:"completed_date"`
}

type bookRepository struct {
	table
}

func NewBookRepository(db *sqlx.DB) BookRepository {
	return &bookRepository{table{db: db, name: "books"}}
}

func (r *bookRepository) All(ctx context.Context) ([]model.Book, error) {
	var rows []bookRow
	query := `SELECT id, title, author, status, image_url, notes, started_date, completed_date
	          FROM books ORDER BY started_date ASC, id ASC`

	err := r.selectAll(ctx, &rows, query)
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, len(rows))
	for i, row := range rows {
		books[i] = model.Book{
			ID:          row.ID,
			Title:       row.Title,
			Author:      row.Author,
			Status:      model.BookStatus(row.Status),
			ImageURL:    row.ImageURL.String,
			Notes:       row.Notes.String,
			StartedAt:   optTime(row.StartedDate),
			CompletedAt: optTime(row.CompletedDate),
		}
	}
	return books, nil
}

func (r *bookRepository) Create(ctx context.Context, book model.Book) error {
	query := `INSERT INTO books (id, title, author, status, image_url, notes, started_date, completed_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	return r.insert(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		string(book.Status),
		nullText(book.ImageURL),
		nullText(book.Notes),
		nullTime(book.StartedAt),
		nullTime(book.CompletedAt),
	)
}

func (r *bookRepository) Update(ctx context.Context, id string, patch model.BookPatch) error {
	var c changes
	if patch.Title != nil {
		c.set("title", *patch.Title)
	}
	if patch.Author != nil {
		c.set("author", *patch.Author)
	}
	if patch.Status != nil {
		c.set("status", string(*patch.Status))
	}
	if patch.ImageURL != nil {
		c.set("image_url", nullText(*patch.ImageURL))
	}
	if patch.Notes != nil {
		c.set("notes", nullText(*patch.Notes))
	}
	if patch.StartedAt.IsSet() {
		c.set("started_date", optTimeArg(patch.StartedAt))
	}
	if patch.CompletedAt.IsSet() {
		c.set("completed_date", optTimeArg(patch.CompletedAt))
	}
	return r.update(ctx, id, c)
}

func (r *bookRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
