package timeline

import (
	"github.com/andon-systems/andon/internal/taxonomy"
	"github.com/andon-systems/andon/pkg/types"
)

// DowntimeMinutes sums the duration of intervals classified as downtime,
// including the reclassified excess of split programmed stops.
func DowntimeMinutes(intervals []types.Interval) float64 {
	var total float64
	for _, iv := range intervals {
		if iv.Category.IsDowntime {
			total += iv.Minutes()
		}
	}
	return total
}

// LoggedDowntimeMinutes sums downtime from the status log's own "Hours"
// column. When the export carries logged durations they are authoritative and
// override recomputation from timestamp differences.
func LoggedDowntimeMinutes(events []types.Event, classifier *taxonomy.Classifier) float64 {
	var total float64
	for _, ev := range events {
		if classifier.Classify(ev.Status).IsDowntime {
			total += ev.Hours * 60
		}
	}
	return total
}

// HasLoggedHours reports whether any event carries a logged duration.
func HasLoggedHours(events []types.Event) bool {
	for _, ev := range events {
		if ev.HasHours {
			return true
		}
	}
	return false
}
