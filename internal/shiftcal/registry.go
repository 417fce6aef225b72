// Package shiftcal resolves shift codes onto concrete calendar dates and
// answers elapsed-time questions about the resulting windows.
package shiftcal

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/andon-systems/andon/pkg/types"
)

// ErrUnknownShift is returned when a shift code is not in the shift table.
// There is no sensible default shift, so callers must fail the whole computation.
var ErrUnknownShift = errors.New("unknown shift code")

var timeOfDayRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

type timeOfDay struct {
	hour, minute int
}

func (t timeOfDay) minutes() int { return t.hour*60 + t.minute }

// Registry holds the plant shift table in a resolved form.
type Registry struct {
	shifts map[string]shiftDef
	loc    *time.Location
}

type shiftDef struct {
	start, end timeOfDay
}

// NewRegistry parses the configured shift table. All windows are produced in loc.
func NewRegistry(defs map[string]types.ShiftDef, loc *time.Location) (*Registry, error) {
	if loc == nil {
		loc = time.Local
	}
	r := &Registry{shifts: make(map[string]shiftDef, len(defs)), loc: loc}
	for code, def := range defs {
		start, err := parseTimeOfDay(def.Start)
		if err != nil {
			return nil, fmt.Errorf("shift %q start: %w", code, err)
		}
		end, err := parseTimeOfDay(def.End)
		if err != nil {
			return nil, fmt.Errorf("shift %q end: %w", code, err)
		}
		r.shifts[code] = shiftDef{start: start, end: end}
	}
	return r, nil
}

// Codes returns the configured shift codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.shifts))
	for code := range r.shifts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Definition returns the raw HH:MM definition for a shift code.
func (r *Registry) Definition(code string) (types.ShiftDef, bool) {
	def, ok := r.shifts[code]
	if !ok {
		return types.ShiftDef{}, false
	}
	return types.ShiftDef{
		Start: fmt.Sprintf("%02d:%02d", def.start.hour, def.start.minute),
		End:   fmt.Sprintf("%02d:%02d", def.end.hour, def.end.minute),
	}, true
}

// Resolve combines a calendar date with a shift code into an absolute window.
// A shift whose end time of day is not after its start crosses midnight and
// ends on the following day.
func (r *Registry) Resolve(date time.Time, code string) (types.ShiftWindow, error) {
	def, ok := r.shifts[code]
	if !ok {
		return types.ShiftWindow{}, fmt.Errorf("%w: %q", ErrUnknownShift, code)
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.loc)
	start := day.Add(time.Duration(def.start.minutes()) * time.Minute)

	endDay := day
	if def.end.minutes() <= def.start.minutes() {
		endDay = day.AddDate(0, 0, 1)
	}
	end := endDay.Add(time.Duration(def.end.minutes()) * time.Minute)

	return types.ShiftWindow{Code: code, Date: day, Start: start, End: end}, nil
}

// ShiftForTimestamp returns the code of the shift whose time-of-day range
// contains ts, or "" if none matches. Iteration order is sorted for determinism
// when shift definitions overlap.
func (r *Registry) ShiftForTimestamp(ts time.Time) string {
	t := timeOfDay{hour: ts.Hour(), minute: ts.Minute()}
	for _, code := range r.Codes() {
		def := r.shifts[code]
		if def.start.minutes() < def.end.minutes() {
			if t.minutes() >= def.start.minutes() && t.minutes() < def.end.minutes() {
				return code
			}
		} else {
			if t.minutes() >= def.start.minutes() || t.minutes() < def.end.minutes() {
				return code
			}
		}
	}
	return ""
}

func parseTimeOfDay(s string) (timeOfDay, error) {
	m := timeOfDayRegex.FindStringSubmatch(s)
	if m == nil {
		return timeOfDay{}, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return timeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	return timeOfDay{hour: hour, minute: minute}, nil
}
