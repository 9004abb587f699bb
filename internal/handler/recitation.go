package handler

import (
	"net/http"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/stats"
	"github.com/nzoschke/productivity/internal/ui"
)

type RecitationHandler struct {
	collectionHandler[model.Recitation]
	recitations *service.RecitationService
}

func NewRecitationHandler(recitations *service.RecitationService) *RecitationHandler {
	return &RecitationHandler{
		collectionHandler: newCollectionHandler(recitations.Collection(), func(r *http.Request) error {
			return recitations.Load(r.Context())
		}),
		recitations: recitations,
	}
}

func (h *RecitationHandler) List(w http.ResponseWriter, r *http.Request) {
	ui.JSON(w, http.StatusOK, struct {
		listResponse[model.Recitation]
		Stats stats.RecitationStats `json:"stats"`
	}{h.response(), h.recitations.Stats()})
}

func (h *RecitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.RecitationInput
	err := decode(r, &in, "date")
	if err != nil {
		writeError(w, err)
		return
	}

	recitation, err := h.recitations.Add(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusCreated, recitation)
}

func (h *RecitationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.RecitationPatch
	err := decode(r, &patch, "date")
	if err != nil {
		writeError(w, err)
		return
	}

	recitation, err := h.recitations.Edit(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, recitation)
}

func (h *RecitationHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	recitation, err := h.recitations.Toggle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, recitation)
}

func (h *RecitationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.recitations.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
