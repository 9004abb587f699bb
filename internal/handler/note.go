package handler

import (
	"log/slog"
	"net/http"

	"github.com/nzoschke/productivity/internal/markdown"
	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/ui"
)

type NoteHandler struct {
	collectionHandler[model.Note]
	notes  *service.NoteService
	parser *markdown.Parser
}

func NewNoteHandler(notes *service.NoteService, parser *markdown.Parser) *NoteHandler {
	return &NoteHandler{
		collectionHandler: newCollectionHandler(notes.Collection(), func(r *http.Request) error {
			return notes.Load(r.Context())
		}),
		notes:  notes,
		parser: parser,
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	err := decode(r, &in)
	if err != nil {
		writeError(w, err)
		return
	}

	note, err := h.notes.Add(r.Context(), in.Title, in.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.NotePatch
	err := decode(r, &patch, "updatedAt")
	if err != nil {
		writeError(w, err)
		return
	}

	note, err := h.notes.Edit(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.notes.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NoteHandler) NotesPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, ui.NotesPage(h.notes.Collection().Items()))
}

// NotePage renders one note's markdown content as HTML.
func (h *NoteHandler) NotePage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	note, ok := h.notes.Collection().Find(id)
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	html, err := h.parser.Parse([]byte(note.Content))
	if err != nil {
		slog.Error("failed to render note", "error", err, "note_id", id)
		http.Error(w, "Failed to render note", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, ui.NotePage(note, html))
}
