package handlers

import "net/http"

// Refresh forces a snapshot reload regardless of TTL.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Refresh(r.Context())
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "refresh failed", err)
		return
	}
	h.writeJSON(w, map[string]string{
		"snapshotId": snap.ID,
		"loadedAt":   snap.LoadedAt.Format(http.TimeFormat),
	})
}
