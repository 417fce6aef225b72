package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andon-systems/andon/internal/config"
	"github.com/andon-systems/andon/pkg/types"
)

func defaultClassifier() *Classifier {
	return New(nil, config.DefaultProgrammedKeywords(), config.DefaultRunningKeywords())
}

func TestClassifyCascade(t *testing.T) {
	c := defaultClassifier()

	tests := []struct {
		status     string
		wantClass  types.DisplayClass
		isDowntime bool
		programmed bool
	}{
		{"Producción", types.ClassProduction, false, false},
		{"Running", types.ClassProduction, false, false},
		{"Corriendo", types.ClassProduction, false, false},
		{"Arranque", types.ClassStartup, true, false},
		{"Comida", types.ClassMeal, false, true},
		{"Lunch Break", types.ClassMeal, false, true},
		{"Break", types.ClassBreak, false, true},
		{"Clockout", types.ClassBreak, false, true},
		{"Cambio de Modelo", types.ClassChangeover, true, false},
		{"Mtto Preventivo", types.ClassPreventive, true, false},
		{"Correctivo Molde", types.ClassCorrectiveMold, true, false},
		{"Correctivo Prensa", types.ClassCorrectivePress, true, false},
		{"Correctivo Extrusión", types.ClassCorrectiveExtrude, true, false},
		{"Mtto Correctivo", types.ClassCorrective, true, false},
		{"Falta de Material", types.ClassMaterialShortage, true, false},
		{"T.M. Calidad", types.ClassQuality, true, false},
		{"Falla Servicios", types.ClassUtilities, true, false},
		{"Cambio de Dados", types.ClassDies, true, false},
		{"Apagado", types.ClassPoweredOff, true, false},
		{"algo totalmente desconocido", types.ClassUnplanned, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			cat := c.Classify(tt.status)
			assert.Equal(t, tt.wantClass, cat.Class)
			assert.Equal(t, tt.isDowntime, cat.IsDowntime)
			assert.Equal(t, tt.programmed, cat.Programmed)
		})
	}
}

func TestClassifyNormalizesWhitespace(t *testing.T) {
	c := New([]types.TaxonomyEntry{
		{Status: "Cambio  de   Modelo", Class: string(types.ClassChangeover), IsDowntime: true},
	}, config.DefaultProgrammedKeywords(), config.DefaultRunningKeywords())

	// Irregular internal spacing collapses onto the same entry.
	for _, raw := range []string{"Cambio de Modelo", "  Cambio  de Modelo ", "Cambio\tde\tModelo"} {
		cat := c.Classify(raw)
		assert.Equal(t, types.ClassChangeover, cat.Class, "raw=%q", raw)
	}
}

func TestClassifyExactBeatsCascade(t *testing.T) {
	// An exact entry can override what the keyword cascade would decide.
	c := New([]types.TaxonomyEntry{
		{Status: "Break Largo", Label: "Break Largo", Class: string(types.ClassUnplanned), IsDowntime: true},
	}, config.DefaultProgrammedKeywords(), config.DefaultRunningKeywords())

	cat := c.Classify("Break Largo")
	assert.True(t, cat.IsDowntime)
	assert.Equal(t, types.ClassUnplanned, cat.Class)

	// Without the entry, "break" keyword wins.
	assert.False(t, defaultClassifier().Classify("Break Largo").IsDowntime)
}

func TestClassifyTotality(t *testing.T) {
	c := defaultClassifier()
	for _, raw := range []string{"", "   ", "???", "estado-nuevo-2025", "\t\n"} {
		cat := c.Classify(raw)
		assert.NotEmpty(t, cat.Class, "raw=%q must classify", raw)
		assert.True(t, cat.IsDowntime, "unknown text defaults to downtime")
	}
}

func TestClassifyTiempoMuerto(t *testing.T) {
	c := defaultClassifier()
	assert.True(t, c.Classify("T.M. Falla Eléctrica").IsDowntime)
	assert.True(t, c.Classify("Tiempo Muerto").IsDowntime)

	// The marker overrides even a running keyword in the same text.
	assert.True(t, c.Classify("T.M. en producción").IsDowntime)
}
