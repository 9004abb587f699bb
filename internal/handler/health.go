package handler

import (
	"net/http"

	"github.com/nzoschke/productivity/internal/ui"
)

func Healthz(w http.ResponseWriter, r *http.Request) {
	ui.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
