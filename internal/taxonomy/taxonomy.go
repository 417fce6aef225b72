// Package taxonomy classifies raw workcenter status text into categories.
//
// Resolution is three-tiered and total: an exact table keyed on normalized
// text, then an ordered keyword cascade, then a default unplanned-downtime
// category. Every input resolves to exactly one category; classification
// never fails.
package taxonomy

import (
	"strings"

	"github.com/andon-systems/andon/pkg/types"
)

// Rule pairs a predicate with the category it yields. Rules are evaluated
// top-to-bottom; the first match wins.
type Rule struct {
	Match    func(lower string) bool
	Category types.StatusCategory
}

// Classifier resolves status text to a StatusCategory.
type Classifier struct {
	exact    map[string]types.StatusCategory
	cascade  []Rule
	fallback types.StatusCategory
}

// New builds a classifier from explicit table entries and the plant keyword
// lists. Exact entries are keyed on normalized text so that irregular
// whitespace variants in the raw CSVs collapse onto one entry.
func New(entries []types.TaxonomyEntry, programmedKeywords, runningKeywords []string) *Classifier {
	c := &Classifier{
		exact:    make(map[string]types.StatusCategory, len(entries)),
		cascade:  defaultCascade(programmedKeywords, runningKeywords),
		fallback: Unplanned(),
	}
	for _, e := range entries {
		cat := types.StatusCategory{
			Label:      e.Label,
			Class:      types.DisplayClass(e.Class),
			IsDowntime: e.IsDowntime,
			Programmed: e.Programmed,
		}
		if cat.Label == "" {
			cat.Label = strings.TrimSpace(e.Status)
		}
		c.exact[Normalize(e.Status)] = cat
	}
	return c
}

// Classify resolves raw status text to exactly one category. An explicit
// "T.M." / "tiempo muerto" marker always counts as downtime, whatever other
// keywords the text carries; exact table entries are exempt from the
// override since they are deliberate configuration.
func (c *Classifier) Classify(raw string) types.StatusCategory {
	norm := Normalize(raw)
	if cat, ok := c.exact[norm]; ok {
		return cat
	}
	lower := strings.ToLower(norm)

	cat := c.fallback
	for _, rule := range c.cascade {
		if rule.Match(lower) {
			cat = rule.Category
			break
		}
	}
	if strings.Contains(lower, "t.m.") || strings.Contains(lower, "tiempo muerto") {
		cat.IsDowntime = true
		cat.Programmed = false
	}
	return cat
}

// Normalize trims and collapses internal whitespace. Raw plant CSVs carry
// doubled spaces and stray padding; collapsing once here replaces enumerating
// every irregular variant as its own table entry.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Unplanned is the fallback category for unrecognized status text.
func Unplanned() types.StatusCategory {
	return types.StatusCategory{
		Label:      "Paro No Programado",
		Class:      types.ClassUnplanned,
		IsDowntime: true,
	}
}

// PoweredOff is the implicit category for the pre-first-event gap.
func PoweredOff() types.StatusCategory {
	return types.StatusCategory{
		Label:      "Apagado",
		Class:      types.ClassPoweredOff,
		IsDowntime: true,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
