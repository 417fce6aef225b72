package handlers

import (
	"net/http"

	"github.com/andon-systems/andon/pkg/types"
)

// Workcenters lists the distinct workcenters in the current production data.
func (h *Handlers) Workcenters(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Current(r.Context())
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "data sources unavailable", err)
		return
	}
	h.writeJSON(w, map[string][]string{"workcenters": h.engine.Workcenters(snap)})
}

// Shifts returns the configured shift table.
func (h *Handlers) Shifts(w http.ResponseWriter, r *http.Request) {
	shifts := make(map[string]types.ShiftDef)
	for _, code := range h.engine.Shifts().Codes() {
		def, ok := h.engine.Shifts().Definition(code)
		if ok {
			shifts[code] = def
		}
	}
	h.writeJSON(w, map[string]map[string]types.ShiftDef{"shifts": shifts})
}
