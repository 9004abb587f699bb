package handler

import (
	"net/http"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/ui"
)

type GoalHandler struct {
	collectionHandler[model.Goal]
	goals *service.GoalService
}

func NewGoalHandler(goals *service.GoalService) *GoalHandler {
	return &GoalHandler{
		collectionHandler: newCollectionHandler(goals.Collection(), func(r *http.Request) error {
			return goals.Load(r.Context())
		}),
		goals: goals,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.GoalInput
	err := decode(r, &in, "reminder")
	if err != nil {
		writeError(w, err)
		return
	}

	goal, err := h.goals.Add(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.GoalPatch
	err := decode(r, &patch, "reminder")
	if err != nil {
		writeError(w, err)
		return
	}

	goal, err := h.goals.Edit(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.goals.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
