package handler

import (
	"fmt"
	"net/http"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/stats"
	"github.com/nzoschke/productivity/internal/ui"
)

type PrayerHandler struct {
	collectionHandler[model.PrayerDay]
	prayers *service.PrayerService
	clock   service.Clock
}

func NewPrayerHandler(prayers *service.PrayerService, clock service.Clock) *PrayerHandler {
	return &PrayerHandler{
		collectionHandler: newCollectionHandler(prayers.Collection(), func(r *http.Request) error {
			return prayers.Load(r.Context())
		}),
		prayers: prayers,
		clock:   clock,
	}
}

// List returns the record for ?date=YYYY-MM-DD (default: today) and the
// week containing it.
func (h *PrayerHandler) List(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.clock.Today()
	}

	day, err := h.prayers.Day(date)
	if err != nil {
		writeError(w, err)
		return
	}
	ref, err := stats.ParseDate(date)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", service.ErrInvalid, err))
		return
	}

	ui.JSON(w, http.StatusOK, struct {
		listResponse[model.PrayerDay]
		Day  model.PrayerDay  `json:"day"`
		Week stats.PrayerWeek `json:"week"`
	}{h.response(), day, h.prayers.Week(ref)})
}

func (h *PrayerHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	prayer, err := model.ParsePrayer(r.PathValue("prayer"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", service.ErrInvalid, err))
		return
	}

	day, err := h.prayers.Toggle(r.Context(), r.PathValue("date"), prayer)
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, day)
}

func (h *PrayerHandler) Clear(w http.ResponseWriter, r *http.Request) {
	day, err := h.prayers.Clear(r.Context(), r.PathValue("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	ui.JSON(w, http.StatusOK, day)
}
