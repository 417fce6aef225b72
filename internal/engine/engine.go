// Package engine computes the dashboard for one shift query from one
// snapshot.
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/andon-systems/andon/internal/kpi"
	"github.com/andon-systems/andon/internal/metrics"
	"github.com/andon-systems/andon/internal/shiftcal"
	"github.com/andon-systems/andon/internal/source"
	"github.com/andon-systems/andon/internal/taxonomy"
	"github.com/andon-systems/andon/internal/timeline"
	"github.com/andon-systems/andon/pkg/types"
)

// Query selects what to compute: a calendar date, a shift code, an optional
// workcenter subset (empty means all), and an optional rate override
// (0 means the configured default).
type Query struct {
	Date        time.Time
	ShiftCode   string
	Workcenters []string
	Rate        float64
}

// Engine wires the shift calendar, taxonomy, interval builder and KPI
// aggregator into a single computation.
type Engine struct {
	shifts      *shiftcal.Registry
	classifier  *taxonomy.Classifier
	builder     *timeline.Builder
	kpis        *kpi.Aggregator
	defaultRate float64
	loc         *time.Location
}

// New creates an Engine.
func New(shifts *shiftcal.Registry, classifier *taxonomy.Classifier, builder *timeline.Builder, kpis *kpi.Aggregator, defaultRate float64, loc *time.Location) *Engine {
	return &Engine{
		shifts:      shifts,
		classifier:  classifier,
		builder:     builder,
		kpis:        kpis,
		defaultRate: defaultRate,
		loc:         loc,
	}
}

// Now returns the current instant in the plant's timezone. Callers capture
// it once per computation; Compute never reads the clock itself, so every
// derived figure in one dashboard agrees on the same reference instant.
func (e *Engine) Now() time.Time {
	return time.Now().In(e.loc)
}

// Shifts exposes the configured shift registry.
func (e *Engine) Shifts() *shiftcal.Registry {
	return e.shifts
}

// Compute derives the full dashboard for q from snap at the reference
// instant now.
func (e *Engine) Compute(snap *source.Snapshot, q Query, now time.Time) (*types.Dashboard, error) {
	window, err := e.shifts.Resolve(q.Date, q.ShiftCode)
	if err != nil {
		return nil, fmt.Errorf("resolving shift: %w", err)
	}
	metrics.ComputationsTotal.Add(1)

	rate := q.Rate
	if rate <= 0 {
		rate = e.defaultRate
	}

	selected := e.selectWorkcenters(snap, q.Workcenters)

	production := filterProduction(snap.Production, selected, window)
	scrap := filterScrap(snap.Scrap, selected, window)
	events := filterEvents(snap.StatusLog, selected, window)

	// One timeline per selected workcenter, in selection order.
	grouped := timeline.ByWorkcenter(events)
	timelines := make([]types.WorkcenterTimeline, 0, len(selected))
	var allIntervals []types.Interval
	for _, wc := range selected {
		intervals := e.builder.Build(grouped[wc], window, now)
		allIntervals = append(allIntervals, intervals...)
		timelines = append(timelines, types.WorkcenterTimeline{
			Workcenter: wc,
			Intervals:  intervals,
		})
	}

	// The export's own logged durations win over interval arithmetic when
	// present.
	downtime := timeline.DowntimeMinutes(allIntervals)
	if timeline.HasLoggedHours(events) {
		downtime = timeline.LoggedDowntimeMinutes(events, e.classifier)
	}

	return &types.Dashboard{
		SnapshotID:  snap.ID,
		Window:      window,
		State:       shiftcal.State(window, now),
		ComputedAt:  now,
		Workcenters: selected,
		KPIs:        e.kpis.Compute(production, scrap, snap.Costs, downtime, rate, window, now),
		Timeline:    timelines,
		Hourly:      kpi.Hourly(production, window, rate),
		TopScrap:    e.kpis.TopScrapReasons(scrap, 3),
	}, nil
}

// Workcenters lists the distinct workcenters present in the snapshot's
// production data.
func (e *Engine) Workcenters(snap *source.Snapshot) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range snap.Production {
		if rec.Workcenter == "" {
			continue
		}
		if _, ok := seen[rec.Workcenter]; !ok {
			seen[rec.Workcenter] = struct{}{}
			out = append(out, rec.Workcenter)
		}
	}
	sort.Strings(out)
	return out
}

func (e *Engine) selectWorkcenters(snap *source.Snapshot, requested []string) []string {
	if len(requested) == 0 {
		return e.Workcenters(snap)
	}
	out := append([]string(nil), requested...)
	sort.Strings(out)
	return out
}

func filterProduction(recs []types.ProductionRecord, workcenters []string, window types.ShiftWindow) []types.ProductionRecord {
	wanted := toSet(workcenters)
	var out []types.ProductionRecord
	for _, rec := range recs {
		if _, ok := wanted[rec.Workcenter]; !ok {
			continue
		}
		if !inWindow(rec.Timestamp, window) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func filterScrap(recs []types.ScrapRecord, workcenters []string, window types.ShiftWindow) []types.ScrapRecord {
	wanted := toSet(workcenters)
	var out []types.ScrapRecord
	for _, rec := range recs {
		if _, ok := wanted[rec.Workcenter]; !ok {
			continue
		}
		if !inWindow(rec.Timestamp, window) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func filterEvents(events []types.Event, workcenters []string, window types.ShiftWindow) []types.Event {
	wanted := toSet(workcenters)
	var selected []types.Event
	for _, ev := range events {
		if _, ok := wanted[ev.Workcenter]; ok {
			selected = append(selected, ev)
		}
	}
	return timeline.FilterRange(selected, window)
}

func inWindow(ts time.Time, window types.ShiftWindow) bool {
	return !ts.IsZero() && !ts.Before(window.Start) && ts.Before(window.End)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
