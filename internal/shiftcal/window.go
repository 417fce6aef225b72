package shiftcal

import (
	"time"

	"github.com/andon-systems/andon/pkg/types"
)

// ElapsedProductiveHours returns how many hours of the window have elapsed at
// ref, clamped to [0, full window]. Break minutes are not subtracted: they are
// already embedded in the shift's nominal duration.
func ElapsedProductiveHours(w types.ShiftWindow, ref time.Time) float64 {
	if ref.Before(w.Start) {
		return 0
	}
	if ref.After(w.End) {
		return w.End.Sub(w.Start).Hours()
	}
	return ref.Sub(w.Start).Hours()
}

// State reports where ref falls relative to the window.
func State(w types.ShiftWindow, ref time.Time) types.WindowState {
	switch {
	case ref.Before(w.Start):
		return types.WindowNotStarted
	case ref.Before(w.End):
		return types.WindowActive
	default:
		return types.WindowEnded
	}
}

// Hours returns the ordered wall-clock hours the window spans, exclusive of
// the end hour, wrapping across midnight for overnight shifts. It drives the
// hourly production-vs-target series.
func Hours(w types.ShiftWindow) []int {
	startHour := w.Start.Hour()
	endHour := w.End.Hour()

	var hours []int
	if w.Start.Day() != w.End.Day() {
		for h := startHour; h < 24; h++ {
			hours = append(hours, h)
		}
		for h := 0; h < endHour; h++ {
			hours = append(hours, h)
		}
		return hours
	}
	for h := startHour; h < endHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
