// Package kpi aggregates shift-level production KPIs from normalized records.
// All functions are pure over their inputs; the reference instant is supplied
// by the caller.
package kpi

import (
	"sort"
	"strings"
	"time"

	"github.com/andon-systems/andon/internal/shiftcal"
	"github.com/andon-systems/andon/pkg/types"
)

// Aggregator computes the KPI bundle for one shift query. The finishing
// department name scopes which scrap rows count toward scrap KPIs.
type Aggregator struct {
	finishingDept string
}

// NewAggregator creates an Aggregator. The department comparison is
// case-insensitive.
func NewAggregator(finishingDept string) *Aggregator {
	return &Aggregator{finishingDept: strings.ToLower(strings.TrimSpace(finishingDept))}
}

// FilterScrap returns the scrap rows attributed to the finishing department.
func (a *Aggregator) FilterScrap(scrap []types.ScrapRecord) []types.ScrapRecord {
	var out []types.ScrapRecord
	for _, rec := range scrap {
		if strings.ToLower(strings.TrimSpace(rec.Department)) == a.finishingDept {
			out = append(out, rec)
		}
	}
	return out
}

// Compute derives the scalar KPI set. Production and scrap records must
// already be restricted to the queried workcenters and shift window;
// downtimeMinutes comes from the timeline (or the logged Hours column).
//
// Percentages degrade to 0 rather than dividing by zero: performance when no
// time has elapsed, scrap share when no value was produced or scrapped.
func (a *Aggregator) Compute(
	production []types.ProductionRecord,
	scrap []types.ScrapRecord,
	costs types.CostTable,
	downtimeMinutes float64,
	rate float64,
	window types.ShiftWindow,
	now time.Time,
) types.KPISet {
	elapsed := shiftcal.ElapsedProductiveHours(window, now)
	target := rate * elapsed

	var actual, prodValue float64
	for _, rec := range production {
		actual += rec.Quantity
		prodValue += rec.Quantity * costs.Cost(rec.Part)
	}

	var scrapValue, scrapQty float64
	for _, rec := range a.FilterScrap(scrap) {
		scrapValue += rec.ExtendedCost
		scrapQty += rec.Quantity
	}

	k := types.KPISet{
		ActualOutput:      actual,
		AccumulatedTarget: target,
		Difference:        actual - target,
		ProductionValue:   prodValue,
		ScrapValue:        scrapValue,
		ScrapQuantity:     scrapQty,
		DowntimeMinutes:   downtimeMinutes,
		ElapsedHours:      elapsed,
	}
	if target > 0 {
		k.PerformancePct = actual / target * 100
	}
	if total := scrapValue + prodValue; total > 0 {
		k.ScrapPct = scrapValue / total * 100
	}
	return k
}

// TopScrapReasons returns the n costliest scrap reasons in the finishing
// department, by summed extended cost. Ties break alphabetically so the
// result is stable across loads.
func (a *Aggregator) TopScrapReasons(scrap []types.ScrapRecord, n int) []types.ScrapReasonCost {
	byReason := make(map[string]float64)
	for _, rec := range a.FilterScrap(scrap) {
		byReason[rec.Reason] += rec.ExtendedCost
	}

	out := make([]types.ScrapReasonCost, 0, len(byReason))
	for reason, cost := range byReason {
		out = append(out, types.ScrapReasonCost{Reason: reason, Cost: cost})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost > out[j].Cost
		}
		return out[i].Reason < out[j].Reason
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Hourly builds the production-vs-target series over the shift's wall-clock
// hours. Every hour of the shift carries the full hourly rate as its target;
// actual output is bucketed by the record's hour.
func Hourly(production []types.ProductionRecord, window types.ShiftWindow, rate float64) []types.HourlyPoint {
	actualByHour := make(map[int]float64)
	for _, rec := range production {
		if rec.Timestamp.IsZero() {
			continue
		}
		actualByHour[rec.Timestamp.Hour()] += rec.Quantity
	}

	hours := shiftcal.Hours(window)
	out := make([]types.HourlyPoint, 0, len(hours))
	for _, h := range hours {
		out = append(out, types.HourlyPoint{
			Hour:   h,
			Actual: actualByHour[h],
			Target: rate,
		})
	}
	return out
}
