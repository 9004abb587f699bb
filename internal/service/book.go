package service

import (
	"context"
	"strings"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/repository"
	"github.com/nzoschke/productivity/internal/validation"
)

type BookInput struct {
	Title    string           `json:"title"`
	Author   string           `json:"author"`
	Status   model.BookStatus `json:"status"`
	ImageURL string           `json:"imageUrl"`
	Notes    string           `json:"notes"`
}

type BookService struct {
	repo  repository.BookRepository
	books *Collection[model.Book]
	clock Clock
}

func NewBookService(repo repository.BookRepository, fallback *localstore.Store[model.Book], clock Clock) *BookService {
	return &BookService{
		repo:  repo,
		books: NewCollection("book", "books", fallback),
		clock: clock,
	}
}

func (s *BookService) Collection() *Collection[model.Book] {
	return s.books
}

func (s *BookService) Load(ctx context.Context) error {
	return s.books.Load(ctx, s.repo.All)
}

// Add starts the book now; a book added as completed is also completed now.
func (s *BookService) Add(ctx context.Context, in BookInput) (model.Book, error) {
	if in.Status == "" {
		in.Status = model.BookInProgress
	}

	now := s.clock.Now().UTC()
	book := model.Book{
		ID:        model.NewID(),
		Title:     strings.TrimSpace(in.Title),
		Author:    strings.TrimSpace(in.Author),
		Status:    in.Status,
		ImageURL:  validation.NormalizeImageURL(in.ImageURL),
		Notes:     in.Notes,
		StartedAt: &now,
	}
	if book.Status == model.BookCompleted {
		completed := now
		book.CompletedAt = &completed
	}

	err := validateBook(book)
	if err != nil {
		return model.Book{}, err
	}

	err = s.books.Mutate(ctx, "add", appendItem(book), func(ctx context.Context) error {
		return s.repo.Create(ctx, book)
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// Edit stamps the completion date when the status moves to completed and
// fills in a missing start date.
func (s *BookService) Edit(ctx context.Context, id string, patch model.BookPatch) (model.Book, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if patch.Author != nil {
		author := strings.TrimSpace(*patch.Author)
		patch.Author = &author
	}
	if patch.ImageURL != nil {
		url := validation.NormalizeImageURL(*patch.ImageURL)
		patch.ImageURL = &url
	}

	book, err := s.books.edit(ctx, "update", id, func(b *model.Book) error {
		now := s.clock.Now().UTC()
		next := *b

		if patch.Status != nil && *patch.Status == model.BookCompleted &&
			b.Status != model.BookCompleted && !patch.CompletedAt.IsSet() {
			patch.CompletedAt = model.Some(now)
		}
		if b.StartedAt == nil && !patch.StartedAt.IsSet() {
			patch.StartedAt = model.Some(now)
		}

		patch.Apply(&next)
		err := validateBook(next)
		if err != nil {
			return err
		}
		*b = next
		return nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, patch)
	})
	if err != nil {
		return model.Book{}, err
	}

	s.books.clearImageFailed(id)
	return book, nil
}

func (s *BookService) MarkCompleted(ctx context.Context, id string) (model.Book, error) {
	status := model.BookCompleted
	var patch model.BookPatch
	return s.books.edit(ctx, "update", id, func(b *model.Book) error {
		now := s.clock.Now().UTC()
		patch = model.BookPatch{Status: &status, CompletedAt: model.Some(now)}
		patch.Apply(b)
		return nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, patch)
	})
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	return s.books.remove(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func validateBook(b model.Book) error {
	err := validation.ValidateRequired("title", b.Title, maxTitle)
	if err != nil {
		return invalid("%v", err)
	}
	err = validation.ValidateRequired("author", b.Author, maxTitle)
	if err != nil {
		return invalid("%v", err)
	}
	if !b.Status.Valid() {
		return invalid("unknown book status %q", b.Status)
	}
	return nil
}
