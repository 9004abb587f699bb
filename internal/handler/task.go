package handler

import (
	"net/http"
	"time"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/ui"
)

type TaskHandler struct {
	collectionHandler[model.Task]
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{
		collectionHandler: newCollectionHandler(tasks.Collection(), func(r *http.Request) error {
			return tasks.Load(r.Context())
		}),
		tasks: tasks,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text     string     `json:"text"`
		Reminder *time.Time `json:"reminder"`
	}
	err := decode(r, &in, "reminder")
	if err != nil {
		writeError(w, err)
		return
	}

	task, err := h.tasks.Add(r.Context(), in.Text, in.Reminder)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.TaskPatch
	err := decode(r, &patch, "reminder")
	if err != nil {
		writeError(w, err)
		return
	}

	task, err := h.tasks.Edit(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.tasks.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
