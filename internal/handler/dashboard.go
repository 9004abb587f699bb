package handler

import (
	"net/http"

	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/ui"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
	currency  string
}

func NewDashboardHandler(dashboard *service.DashboardService, currency string) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		currency:  currency,
	}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ui.JSON(w, http.StatusOK, h.dashboard.Summary(r.Context()))
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, ui.DashboardPage(h.dashboard.Summary(r.Context()), h.currency))
}
