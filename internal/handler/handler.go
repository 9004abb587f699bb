package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/nzoschke/productivity/internal/service"
	"github.com/nzoschke/productivity/internal/stats"
	"github.com/nzoschke/productivity/internal/ui"
)

const maxBodySize = 1 << 20

type listResponse[T any] struct {
	Items        []T      `json:"items"`
	Error        string   `json:"error"`
	FailedImages []string `json:"failedImages,omitempty"`
}

// collectionHandler serves the operations every tracker shares.
type collectionHandler[T service.Entity] struct {
	coll *service.Collection[T]
	load func(r *http.Request) error
}

func newCollectionHandler[T service.Entity](coll *service.Collection[T], load func(*http.Request) error) collectionHandler[T] {
	return collectionHandler[T]{coll: coll, load: load}
}

func (h collectionHandler[T]) response() listResponse[T] {
	items, banner := h.coll.Snapshot()
	return listResponse[T]{Items: items, Error: banner, FailedImages: h.coll.FailedImages()}
}

func (h collectionHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	ui.JSON(w, http.StatusOK, h.response())
}

// Reload refetches from the backend. A failed reload still answers 200 with
// the fallback items and the banner set.
func (h collectionHandler[T]) Reload(w http.ResponseWriter, r *http.Request) {
	_ = h.load(r)
	ui.JSON(w, http.StatusOK, h.response())
}

func (h collectionHandler[T]) DismissError(w http.ResponseWriter, r *http.Request) {
	h.coll.DismissBanner()
	w.WriteHeader(http.StatusNoContent)
}

func (h collectionHandler[T]) ImageFailed(w http.ResponseWriter, r *http.Request) {
	err := h.coll.MarkImageFailed(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		ui.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		ui.Error(w, http.StatusNotFound, "not found")
	default:
		slog.Error("request failed", "error", err)
		ui.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// decode reads a JSON object into v. Values of dateKeys given as bare
// YYYY-MM-DD dates are converted to timestamps first.
func decode(r *http.Request, v any, dateKeys ...string) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalid, err)
	}

	if len(dateKeys) > 0 {
		body, err = normalizeDates(body, dateKeys)
		if err != nil {
			return err
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	err = dec.Decode(v)
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalid, err)
	}
	return nil
}

func normalizeDates(body []byte, keys []string) ([]byte, error) {
	var fields map[string]json.RawMessage
	err := json.Unmarshal(body, &fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalid, err)
	}

	changed := false
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) != nil {
			continue
		}
		if s == "" {
			fields[key] = json.RawMessage("null")
			changed = true
			continue
		}
		t, err := stats.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", service.ErrInvalid, key, err)
		}
		fields[key], _ = json.Marshal(t.Format(time.RFC3339Nano))
		changed = true
	}

	if !changed {
		return body, nil
	}
	return json.Marshal(fields)
}
