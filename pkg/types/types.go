// Package types defines the public domain types for the Andon shop-floor KPI service.
package types

import "time"

// Event is one normalized workcenter status-change record.
// Timestamp is plant-local; a zero Timestamp marks a row whose date/time
// could not be parsed (retained for data-quality reporting, excluded from
// interval construction).
type Event struct {
	Workcenter string    `json:"workcenter"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
	Hours      float64   `json:"hours,omitempty"` // logged duration in decimal hours, 0 if absent
	HasHours   bool      `json:"hasHours,omitempty"`
}

// ShiftWindow is a shift code resolved onto a concrete calendar date.
// End is always after Start; overnight shifts end on the following day.
type ShiftWindow struct {
	Code  string    `json:"code"`
	Date  time.Time `json:"date"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the nominal length of the shift window.
func (w ShiftWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// StatusCategory is the classification of a raw status label.
type StatusCategory struct {
	Label      string       `json:"label"`
	Class      DisplayClass `json:"class"`
	IsDowntime bool         `json:"isDowntime"`
	Programmed bool         `json:"programmed"` // excused stop, subject to the duration cap
}

// Interval is a half-open [Start, End) span of one status on one workcenter.
// The intervals built for a workcenter partition the observed shift window:
// contiguous, ordered, non-overlapping.
type Interval struct {
	Workcenter string         `json:"workcenter"`
	Start      time.Time      `json:"start"`
	End        time.Time      `json:"end"`
	RawStatus  string         `json:"rawStatus"`
	Category   StatusCategory `json:"category"`
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Minutes returns the interval length in minutes.
func (iv Interval) Minutes() float64 {
	return iv.End.Sub(iv.Start).Minutes()
}

// ProductionRecord is one normalized production-count row.
type ProductionRecord struct {
	Workcenter string    `json:"workcenter"`
	Timestamp  time.Time `json:"timestamp"`
	Quantity   float64   `json:"quantity"`
	Part       string    `json:"part,omitempty"`
}

// ScrapRecord is one normalized scrap-log row.
type ScrapRecord struct {
	Workcenter   string    `json:"workcenter"`
	Timestamp    time.Time `json:"timestamp"`
	Department   string    `json:"department"`
	Quantity     float64   `json:"quantity"`
	Reason       string    `json:"reason,omitempty"`
	ExtendedCost float64   `json:"extendedCost"`
}

// CostTable maps a part identifier to its summed unit cost.
type CostTable map[string]float64

// Cost returns the cost for a part, or 0 for unknown parts.
func (c CostTable) Cost(part string) float64 {
	return c[part]
}

// KPISet is the scalar KPI bundle for one shift query.
type KPISet struct {
	ActualOutput      float64 `json:"actualOutput"`
	AccumulatedTarget float64 `json:"accumulatedTarget"`
	Difference        float64 `json:"difference"`
	PerformancePct    float64 `json:"performancePct"`
	ProductionValue   float64 `json:"productionValue"`
	ScrapValue        float64 `json:"scrapValue"`
	ScrapQuantity     float64 `json:"scrapQuantity"`
	ScrapPct          float64 `json:"scrapPct"`
	DowntimeMinutes   float64 `json:"downtimeMinutes"`
	ElapsedHours      float64 `json:"elapsedHours"`
}

// HourlyPoint is one bucket of the production-vs-target series.
type HourlyPoint struct {
	Hour   int     `json:"hour"` // wall-clock hour, 0-23
	Actual float64 `json:"actual"`
	Target float64 `json:"target"`
}

// ScrapReasonCost is one entry of the top-scrap-reasons breakdown.
type ScrapReasonCost struct {
	Reason string  `json:"reason"`
	Cost   float64 `json:"cost"`
}

// WorkcenterTimeline is the ordered interval list for one workcenter.
type WorkcenterTimeline struct {
	Workcenter string     `json:"workcenter"`
	Intervals  []Interval `json:"intervals"`
}

// Dashboard is the full computed result for one (date, shift, workcenters) query.
type Dashboard struct {
	SnapshotID  string               `json:"snapshotId"`
	Window      ShiftWindow          `json:"window"`
	State       WindowState          `json:"state"`
	ComputedAt  time.Time            `json:"computedAt"`
	Workcenters []string             `json:"workcenters"`
	KPIs        KPISet               `json:"kpis"`
	Timeline    []WorkcenterTimeline `json:"timeline"`
	Hourly      []HourlyPoint        `json:"hourly"`
	TopScrap    []ScrapReasonCost    `json:"topScrap,omitempty"`
}
