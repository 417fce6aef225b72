package handlers

import "net/http"

// Dashboard returns the full computed dashboard for the queried shift.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash := h.compute(w, r)
	if dash == nil {
		return
	}
	h.writeJSON(w, dash)
}

// Timeline returns only the per-workcenter interval timelines.
func (h *Handlers) Timeline(w http.ResponseWriter, r *http.Request) {
	dash := h.compute(w, r)
	if dash == nil {
		return
	}
	h.writeJSON(w, map[string]any{
		"snapshotId": dash.SnapshotID,
		"window":     dash.Window,
		"state":      dash.State,
		"timeline":   dash.Timeline,
	})
}

// KPIs returns only the scalar KPI bundle.
func (h *Handlers) KPIs(w http.ResponseWriter, r *http.Request) {
	dash := h.compute(w, r)
	if dash == nil {
		return
	}
	h.writeJSON(w, map[string]any{
		"snapshotId": dash.SnapshotID,
		"window":     dash.Window,
		"state":      dash.State,
		"kpis":       dash.KPIs,
		"hourly":     dash.Hourly,
		"topScrap":   dash.TopScrap,
	})
}
