package handler

import (
	"net/http"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/ui"
)

type BookHandler struct {
	collectionHandler[model.Book]
	books *service.BookService
}

func NewBookHandler(books *service.BookService) *BookHandler {
	return &BookHandler{
		collectionHandler: newCollectionHandler(books.Collection(), func(r *http.Request) error {
			return books.Load(r.Context())
		}),
		books: books,
	}
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.BookInput
	err := decode(r, &in)
	if err != nil {
		writeError(w, err)
		return
	}

	book, err := h.books.Add(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusCreated, book)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.BookPatch
	err := decode(r, &patch, "startedDate", "completedDate")
	if err != nil {
		writeError(w, err)
		return
	}

	book, err := h.books.Edit(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, book)
}

func (h *BookHandler) Complete(w http.ResponseWriter, r *http.Request) {
	book, err := h.books.MarkCompleted(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, book)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.books.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
