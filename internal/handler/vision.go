package handler

import (
	"net/http"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/ui"
)

type VisionHandler struct {
	collectionHandler[model.VisionItem]
	vision *service.VisionService
}

func NewVisionHandler(vision *service.VisionService) *VisionHandler {
	return &VisionHandler{
		collectionHandler: newCollectionHandler(vision.Collection(), func(r *http.Request) error {
			return vision.Load(r.Context())
		}),
		vision: vision,
	}
}

func (h *VisionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ImageURL string `json:"imageUrl"`
		Quote    string `json:"quote"`
	}
	err := decode(r, &in)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := h.vision.Add(r.Context(), in.ImageURL, in.Quote)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusCreated, item)
}

func (h *VisionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.VisionPatch
	err := decode(r, &patch)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := h.vision.Edit(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, item)
}

func (h *VisionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.vision.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
