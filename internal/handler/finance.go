package handler

import (
	"net/http"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/stats"
	"github.com/nzoschke/productivity/internal/ui"
)

type FinanceHandler struct {
	collectionHandler[model.FinanceEntry]
	finances *service.FinanceService
}

func NewFinanceHandler(finances *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{
		collectionHandler: newCollectionHandler(finances.Collection(), func(r *http.Request) error {
			return finances.Load(r.Context())
		}),
		finances: finances,
	}
}

// List adds the totals of ?month=YYYY-MM (default: current month).
func (h *FinanceHandler) List(w http.ResponseWriter, r *http.Request) {
	summary, err := h.finances.Month(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, err)
		return
	}

	ui.JSON(w, http.StatusOK, struct {
		listResponse[model.FinanceEntry]
		Summary stats.FinanceSummary `json:"summary"`
	}{h.response(), summary})
}

func (h *FinanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.FinanceInput
	err := decode(r, &in, "date")
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.finances.Add(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusCreated, entry)
}

func (h *FinanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.FinancePatch
	err := decode(r, &patch, "date")
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.finances.Edit(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, entry)
}

func (h *FinanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.finances.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
