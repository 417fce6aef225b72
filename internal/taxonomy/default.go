package taxonomy

import (
	"strings"

	"github.com/andon-systems/andon/pkg/types"
)

// defaultCascade builds the keyword rules applied when no exact entry matches.
// Order preserves the plant's classification precedence: running statuses
// first, then programmed stops, then the downtime breakdown. Only running and
// programmed-stop categories are excused from downtime.
func defaultCascade(programmedKeywords, runningKeywords []string) []Rule {
	mealKeywords := []string{"comida", "lunch", "almuerzo", "cena", "meal"}
	breakKeywords := []string{"break", "clockout", "descanso"}

	return []Rule{
		{
			Match: func(s string) bool { return containsAny(s, runningKeywords) },
			Category: types.StatusCategory{
				Label: "Producción", Class: types.ClassProduction,
			},
		},
		{
			Match: func(s string) bool {
				return strings.Contains(s, "arranque") || strings.Contains(s, "idle")
			},
			Category: types.StatusCategory{
				Label: "Arranque/Idle", Class: types.ClassStartup, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool { return containsAny(s, mealKeywords) },
			Category: types.StatusCategory{
				Label: "Comida", Class: types.ClassMeal, Programmed: true,
			},
		},
		{
			Match: func(s string) bool { return containsAny(s, breakKeywords) },
			Category: types.StatusCategory{
				Label: "Break", Class: types.ClassBreak, Programmed: true,
			},
		},
		{
			Match: func(s string) bool { return containsAny(s, programmedKeywords) },
			Category: types.StatusCategory{
				Label: "Parada Programada", Class: types.ClassProgrammed, Programmed: true,
			},
		},
		{
			Match: func(s string) bool {
				return strings.Contains(s, "cambio") && strings.Contains(s, "modelo")
			},
			Category: types.StatusCategory{
				Label: "Cambio Modelo", Class: types.ClassChangeover, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool { return strings.Contains(s, "preventivo") },
			Category: types.StatusCategory{
				Label: "Mtto Preventivo", Class: types.ClassPreventive, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool {
				return strings.Contains(s, "correctivo") && strings.Contains(s, "molde")
			},
			Category: types.StatusCategory{
				Label: "Correctivo Molde", Class: types.ClassCorrectiveMold, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool {
				return strings.Contains(s, "correctivo") && strings.Contains(s, "prensa")
			},
			Category: types.StatusCategory{
				Label: "Correctivo Prensa", Class: types.ClassCorrectivePress, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool {
				return strings.Contains(s, "correctivo") &&
					(strings.Contains(s, "extrusión") || strings.Contains(s, "extrusion"))
			},
			Category: types.StatusCategory{
				Label: "Correctivo Extrusión", Class: types.ClassCorrectiveExtrude, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool { return strings.Contains(s, "correctivo") },
			Category: types.StatusCategory{
				Label: "Correctivo Equipo", Class: types.ClassCorrective, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool {
				return strings.Contains(s, "falta") && strings.Contains(s, "material")
			},
			Category: types.StatusCategory{
				Label: "Falta Material", Class: types.ClassMaterialShortage, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool { return strings.Contains(s, "calidad") },
			Category: types.StatusCategory{
				Label: "T.M. Calidad", Class: types.ClassQuality, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool { return strings.Contains(s, "servicios") },
			Category: types.StatusCategory{
				Label: "Falla Servicios", Class: types.ClassUtilities, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool { return strings.Contains(s, "dados") },
			Category: types.StatusCategory{
				Label: "Dados", Class: types.ClassDies, IsDowntime: true,
			},
		},
		{
			Match: func(s string) bool { return strings.Contains(s, "apagado") },
			Category: PoweredOff(),
		},
	}
}
