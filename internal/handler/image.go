package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/ui"
	"github.com/nzoschke/productivity/internal/validation"
)

type ImageHandler struct {
	images *service.ImageService
}

func NewImageHandler(images *service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload stores a multipart "image" file for the tracker named by the
// "kind" field and returns its URL.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.images.Enabled() {
		ui.Error(w, http.StatusServiceUnavailable, service.ErrStorageDisabled.Error())
		return
	}

	// Parse multipart form (max 5MB + overhead)
	err := r.ParseMultipartForm(validation.ImageConstraints.MaxSize + 1<<20)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, "invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		ui.Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer func() { _ = file.Close() }()

	err = validation.ValidateFile(header, validation.ImageConstraints)
	if err != nil {
		ui.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := h.images.Upload(r.FormValue("kind"), file, header)
	if err != nil {
		if errors.Is(err, service.ErrInvalid) {
			ui.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to upload image", "error", err)
		ui.Error(w, http.StatusInternalServerError, "failed to upload image")
		return
	}

	ui.JSON(w, http.StatusCreated, map[string]string{"url": url})
}
