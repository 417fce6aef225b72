// Package timeline reconstructs gapless status interval timelines from sparse
// status-change events. This is the core of the service: per workcenter, the
// intervals built for one shift partition [shift.start, min(now, shift.end))
// exactly once — contiguous, ordered, non-overlapping.
package timeline

import (
	"sort"
	"time"

	"github.com/andon-systems/andon/internal/taxonomy"
	"github.com/andon-systems/andon/pkg/types"
)

// ExcessSuffix annotates the reclassified tail of an over-cap programmed stop.
const ExcessSuffix = " (exceso)"

// Builder turns one workcenter's ordered event stream into classified intervals.
type Builder struct {
	classifier *taxonomy.Classifier
	stopCap    time.Duration
}

// NewBuilder creates a Builder. capMinutes is the programmed-stop allowance;
// programmed stops running longer are split and their excess becomes
// unplanned downtime.
func NewBuilder(classifier *taxonomy.Classifier, capMinutes int) *Builder {
	return &Builder{
		classifier: classifier,
		stopCap:    time.Duration(capMinutes) * time.Minute,
	}
}

// Build converts the sorted events of a single workcenter, already restricted
// to [window.Start, window.End), into the interval partition of
// [window.Start, min(now, window.End)).
//
// A workcenter with no events in range yields no intervals, even for a
// concluded shift: with no signal at all we claim nothing. The only synthetic
// interval is the leading powered-off gap before the first logged event.
func (b *Builder) Build(events []types.Event, window types.ShiftWindow, now time.Time) []types.Interval {
	if len(events) == 0 {
		return nil
	}
	refEnd := window.End
	if now.Before(refEnd) {
		refEnd = now
	}
	if !refEnd.After(window.Start) {
		return nil
	}

	var out []types.Interval

	first := events[0]
	if first.Timestamp.After(window.Start) {
		gapEnd := first.Timestamp
		if refEnd.Before(gapEnd) {
			gapEnd = refEnd
		}
		if gapEnd.After(window.Start) {
			out = append(out, types.Interval{
				Workcenter: first.Workcenter,
				Start:      window.Start,
				End:        gapEnd,
				RawStatus:  "Apagado (inicio)",
				Category:   taxonomy.PoweredOff(),
			})
		}
	}

	for i, ev := range events {
		end := refEnd
		if i < len(events)-1 {
			end = events[i+1].Timestamp
		}
		if !end.After(ev.Timestamp) {
			// Duplicate timestamps or events past the reference end.
			continue
		}

		cat := b.classifier.Classify(ev.Status)
		if cat.Programmed && end.Sub(ev.Timestamp) > b.stopCap {
			capEnd := ev.Timestamp.Add(b.stopCap)
			out = append(out,
				types.Interval{
					Workcenter: ev.Workcenter,
					Start:      ev.Timestamp,
					End:        capEnd,
					RawStatus:  ev.Status,
					Category:   cat,
				},
				types.Interval{
					Workcenter: ev.Workcenter,
					Start:      capEnd,
					End:        end,
					RawStatus:  ev.Status + ExcessSuffix,
					Category:   taxonomy.Unplanned(),
				},
			)
			continue
		}

		out = append(out, types.Interval{
			Workcenter: ev.Workcenter,
			Start:      ev.Timestamp,
			End:        end,
			RawStatus:  ev.Status,
			Category:   cat,
		})
	}
	return out
}

// FilterRange returns the events inside [window.Start, window.End) with a
// parseable timestamp, preserving order.
func FilterRange(events []types.Event, window types.ShiftWindow) []types.Event {
	var out []types.Event
	for _, ev := range events {
		if ev.Timestamp.IsZero() {
			continue
		}
		if ev.Timestamp.Before(window.Start) || !ev.Timestamp.Before(window.End) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// ByWorkcenter groups events per workcenter, preserving each group's order.
func ByWorkcenter(events []types.Event) map[string][]types.Event {
	grouped := make(map[string][]types.Event)
	for _, ev := range events {
		grouped[ev.Workcenter] = append(grouped[ev.Workcenter], ev)
	}
	return grouped
}

// Workcenters returns the sorted distinct workcenters present in events.
func Workcenters(events []types.Event) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, ev := range events {
		if _, ok := seen[ev.Workcenter]; !ok {
			seen[ev.Workcenter] = struct{}{}
			out = append(out, ev.Workcenter)
		}
	}
	sort.Strings(out)
	return out
}
