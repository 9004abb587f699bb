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

const (
	maxTitle       = 200
	maxDescription = 5000
)

type GoalInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ImageURL    string             `json:"imageUrl"`
	Reminder    *time.Time         `json:"reminder"`
	Category    model.GoalCategory `json:"type"`
}

type GoalService struct {
	repo  repository.GoalRepository
	goals *Collection[model.Goal]
	clock Clock
}

func NewGoalService(repo repository.GoalRepository, fallback *localstore.Store[model.Goal], clock Clock) *GoalService {
	return &GoalService{
		repo:  repo,
		goals: NewCollection("goal", "goals", fallback),
		clock: clock,
	}
}

func (s *GoalService) Collection() *Collection[model.Goal] {
	return s.goals
}

func (s *GoalService) Load(ctx context.Context) error {
	return s.goals.Load(ctx, s.repo.All)
}

func (s *GoalService) Add(ctx context.Context, in GoalInput) (model.Goal, error) {
	if in.Category == "" {
		in.Category = model.GoalShortTerm
	}

	goal := model.Goal{
		ID:          model.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    validation.NormalizeImageURL(in.ImageURL),
		Reminder:    in.Reminder,
		CreatedAt:   s.clock.Now().UTC(),
		Category:    in.Category,
	}

	err := validateGoal(goal)
	if err != nil {
		return model.Goal{}, err
	}

	err = s.goals.Mutate(ctx, "add", appendItem(goal), func(ctx context.Context) error {
		return s.repo.Create(ctx, goal)
	})
	if err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) Edit(ctx context.Context, id string, patch model.GoalPatch) (model.Goal, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if patch.ImageURL != nil {
		url := validation.NormalizeImageURL(*patch.ImageURL)
		patch.ImageURL = &url
	}

	if patch.IsEmpty() {
		goal, ok := s.goals.Find(id)
		if !ok {
			return model.Goal{}, ErrNotFound
		}
		return goal, nil
	}

	goal, err := s.goals.edit(ctx, "update", id, func(g *model.Goal) error {
		next := *g
		patch.Apply(&next)
		err := validateGoal(next)
		if err != nil {
			return err
		}
		*g = next
		return nil
	}, func(ctx context.Context) error {
		return s.repo.Update(ctx, id, patch)
	})
	if err != nil {
		return model.Goal{}, err
	}

	s.goals.clearImageFailed(id)
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.goals.remove(ctx, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func validateGoal(g model.Goal) error {
	err := validation.ValidateRequired("title", g.Title, maxTitle)
	if err != nil {
		return invalid("%v", err)
	}
	err = validation.ValidateLength("description", g.Description, maxDescription)
	if err != nil {
		return invalid("%v", err)
	}
	if !g.Category.Valid() {
		return invalid("unknown goal type %q", g.Category)
	}
	return nil
}
