// Package handlers implements HTTP request handlers for the andon API.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andon-systems/andon/internal/engine"
	"github.com/andon-systems/andon/internal/shiftcal"
	"github.com/andon-systems/andon/internal/source"
	"github.com/andon-systems/andon/pkg/types"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	engine *engine.Engine
	store  *source.Store
	logger *slog.Logger
}

// New creates a new Handlers instance.
func New(eng *engine.Engine, store *source.Store) *Handlers {
	return &Handlers{
		engine: eng,
		store:  store,
		logger: slog.Default(),
	}
}

// SetLogger overrides the default logger.
func (h *Handlers) SetLogger(l *slog.Logger) {
	if l != nil {
		h.logger = l
	}
}

// writeError logs the internal error and returns a sanitized JSON error to the client.
func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		h.logger.Error(msg, "error", err, "status", status)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// parseQuery builds an engine.Query from the request's query string. The
// date defaults to today and the shift to whichever one the current plant
// time falls in.
func (h *Handlers) parseQuery(r *http.Request, now time.Time) (engine.Query, error) {
	q := engine.Query{}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, now.Location())
		if err != nil {
			return q, errors.New("invalid date, expected YYYY-MM-DD")
		}
		q.Date = date
	} else {
		q.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	q.ShiftCode = r.URL.Query().Get("shift")
	if q.ShiftCode == "" {
		q.ShiftCode = h.engine.Shifts().ShiftForTimestamp(now)
		if q.ShiftCode == "" {
			return q, errors.New("shift is required outside scheduled hours")
		}
	}

	if raw := r.URL.Query().Get("wc"); raw != "" {
		for _, wc := range strings.Split(raw, ",") {
			if wc = strings.TrimSpace(wc); wc != "" {
				q.Workcenters = append(q.Workcenters, wc)
			}
		}
	}

	if raw := r.URL.Query().Get("rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			return q, errors.New("invalid rate")
		}
		q.Rate = rate
	}

	return q, nil
}

// compute runs the standard load-then-compute path shared by the dashboard,
// timeline and KPI endpoints. It writes the error response itself and
// returns nil on failure.
func (h *Handlers) compute(w http.ResponseWriter, r *http.Request) *types.Dashboard {
	now := h.engine.Now()

	q, err := h.parseQuery(r, now)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		return nil
	}

	snap, err := h.store.Current(r.Context())
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "data sources unavailable", err)
		return nil
	}

	dash, err := h.engine.Compute(snap, q, now)
	if err != nil {
		if errors.Is(err, shiftcal.ErrUnknownShift) {
			h.writeError(w, http.StatusBadRequest, "unknown shift code", err)
			return nil
		}
		h.writeError(w, http.StatusInternalServerError, "computation failed", err)
		return nil
	}

	return dash
}
