package service

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/repository"
	"github.com/nzoschke/productivity/internal/validation"
)

const maxNoteContent = 100_000

type NoteService struct {
	repo  repository.NoteRepository
	notes *Collection[model.Note]
	clock Clock
}

func NewNoteService(repo repository.NoteRepository, fallback *localstore.Store[model.Note], clock Clock) *NoteService {
	return &NoteService{
		repo:  repo,
		notes: NewCollection("note", "notes", fallback),
		clock: clock,
	}
}

func (s *NoteService) Collection() *Collection[model.Note] {
	return s.notes
}

func (s *NoteService) Load(ctx context.Context) error {
	return s.notes.Load(ctx, s.repo.All)
}

func (s *NoteService) Add(ctx context.Context, title, content string) (model.Note, error) {
	return s.Import(ctx, title, content, time.Time{})
}

// Import adds a note written at createdAt; a zero createdAt means now.
func (s *NoteService) Import(ctx context.Context, title, content string, createdAt time.Time) (model.Note, error) {
	now := s.clock.Now().UTC()
	if !createdAt.IsZero() {
		now = createdAt.UTC()
	}
	note := model.Note{
		ID:        model.NewID(),
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := validateNote(note)
	if err != nil {
		return model.Note{}, err
	}

	err = s.notes.Mutate(ctx, "add", func(notes []model.Note) ([]model.Note, error) {
		return sortNotes(append(notes, note)), nil
	}, func(ctx context.Context) error {
		return s.repo.Create(ctx, note)
	})
	if err != nil {
		return model.Note{}, err
	}
	return note, nil
}

// Edit always bumps UpdatedAt, which moves the note to the top of the list.
func (s *NoteService) Edit(ctx context.Context, id string, patch model.NotePatch) (model.Note, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	patch.UpdatedAt = model.Some(s.clock.Now().UTC())

	var updated model.Note
	err := s.notes.Mutate(ctx, "update", func(notes []model.Note) ([]model.Note, error) {
		i := slices.IndexFunc(notes, func(n model.Note) bool { return n.ID == id })
		if i < 0 {
			return nil, ErrNotFound
		}

		next := notes[i]
		patch.Apply(&next)
		err := validateNote(next)
		if err != nil {
			return nil, err
		}
		notes[i] = next
		updated = next
		return sortNotes(notes), nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, patch)
	})
	if err != nil {
		return model.Note{}, err
	}
	return updated, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	return s.notes.remove(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func validateNote(n model.Note) error {
	err := validation.ValidateRequired("title", n.Title, maxTitle)
	if err != nil {
		return invalid("%v", err)
	}
	err = validation.ValidateLength("content", n.Content, maxNoteContent)
	if err != nil {
		return invalid("%v", err)
	}
	return nil
}

func sortNotes(notes []model.Note) []model.Note {
	slices.SortStableFunc(notes, func(a, b model.Note) int {
		return cmp.Or(b.UpdatedAt.Compare(a.UpdatedAt), cmp.Compare(a.ID, b.ID))
	})
	return notes
}
