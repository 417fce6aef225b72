package ingest

import (
	"fmt"
	"sort"
	"time"

	"github.com/andon-systems/andon/internal/metrics"
	"github.com/andon-systems/andon/pkg/types"
)

// Normalizer converts raw CSV exports into the domain record types.
// All timestamps are interpreted in the plant's local timezone.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer creates a Normalizer for the given plant timezone.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Production parses the production-history export. Rows whose Date cell does
// not parse are kept with a zero timestamp so data-quality problems stay
// visible downstream.
func (n *Normalizer) Production(data []byte) ([]types.ProductionRecord, error) {
	rows, err := DecodeCSV(data)
	if err != nil {
		return nil, fmt.Errorf("production log: %w", err)
	}

	out := make([]types.ProductionRecord, 0, len(rows))
	for _, row := range rows {
		ts, ok := ParseTimestamp(row.Get("Date"), n.loc)
		if !ok {
			metrics.RowsUnparseableTimestamp.Add(1)
		}
		out = append(out, types.ProductionRecord{
			Workcenter: row.Get("Workcenter"),
			Timestamp:  ts,
			Quantity:   ParseNumber(row.Get("Quantity")),
			Part:       row.Get("Part"),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return recordLess(out[i].Workcenter, out[i].Timestamp, out[j].Workcenter, out[j].Timestamp)
	})
	return out, nil
}

// Scrap parses the scrap-log export. The timestamp combines the "Report Date"
// and "Time Scrapped" columns; "Extended Cost" drops its currency formatting.
func (n *Normalizer) Scrap(data []byte) ([]types.ScrapRecord, error) {
	rows, err := DecodeCSV(data)
	if err != nil {
		return nil, fmt.Errorf("scrap log: %w", err)
	}

	out := make([]types.ScrapRecord, 0, len(rows))
	for _, row := range rows {
		ts, ok := CombineTimestamp(row.Get("Report Date"), row.Get("Time Scrapped"), n.loc)
		if !ok {
			metrics.RowsUnparseableTimestamp.Add(1)
		}
		out = append(out, types.ScrapRecord{
			Workcenter:   row.Get("Workcenter"),
			Timestamp:    ts,
			Department:   row.Get("Department"),
			Quantity:     ParseNumber(row.Get("Quantity")),
			Reason:       row.Get("Scrap Reason"),
			ExtendedCost: ParseNumber(row.Get("Extended Cost")),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return recordLess(out[i].Workcenter, out[i].Timestamp, out[j].Workcenter, out[j].Timestamp)
	})
	return out, nil
}

// StatusLog parses the workcenter status-change export into Events, sorted by
// (workcenter, timestamp) with unparseable timestamps last. The optional
// "Hours" column is carried through as the logged duration for that row.
func (n *Normalizer) StatusLog(data []byte) ([]types.Event, error) {
	rows, err := DecodeCSV(data)
	if err != nil {
		return nil, fmt.Errorf("status log: %w", err)
	}

	out := make([]types.Event, 0, len(rows))
	for _, row := range rows {
		ts, ok := CombineTimestamp(row.Get("Date"), row.Get("Time"), n.loc)
		if !ok {
			metrics.RowsUnparseableTimestamp.Add(1)
		}
		ev := types.Event{
			Workcenter: row.Get("Workcenter"),
			Timestamp:  ts,
			Status:     row.Get("Status"),
		}
		if row.Has("Hours") && row.Get("Hours") != "" {
			ev.Hours = ParseNumber(row.Get("Hours"))
			ev.HasHours = true
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return recordLess(out[i].Workcenter, out[i].Timestamp, out[j].Workcenter, out[j].Timestamp)
	})
	return out, nil
}

// Costs parses the cost-structure export, summing cost per part identifier.
func (n *Normalizer) Costs(data []byte) (types.CostTable, error) {
	rows, err := DecodeCSV(data)
	if err != nil {
		return nil, fmt.Errorf("cost table: %w", err)
	}

	table := make(types.CostTable, len(rows))
	for _, row := range rows {
		part := row.Get("Description")
		if part == "" {
			continue
		}
		table[part] += ParseNumber(row.Get("Cost"))
	}
	return table, nil
}

// recordLess orders by (workcenter, timestamp), stable, with zero timestamps
// sorting after all real ones within a workcenter.
func recordLess(wcA string, tsA time.Time, wcB string, tsB time.Time) bool {
	if wcA != wcB {
		return wcA < wcB
	}
	if tsA.IsZero() != tsB.IsZero() {
		return tsB.IsZero()
	}
	return tsA.Before(tsB)
}
