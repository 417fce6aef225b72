package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andon-systems/andon/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "andon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `timezone: America/Mexico_City
defaultRate: 80
refreshInterval: 30s
programmedStopCap: 45
shifts:
  A:
    start: "07:30"
    end: "17:06"
sources:
  production: {kind: file, path: prod.csv}
  scrap: {kind: file, path: scrap.csv}
  statusLog: {kind: file, path: wclog.csv}
  costs: {kind: http, url: "https://example.com/costs.csv"}
server:
  addr: ":3000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float64(80), cfg.DefaultRate)
	assert.Equal(t, "30s", cfg.RefreshInterval)
	assert.Equal(t, 45, cfg.ProgrammedStopCap)
	assert.Equal(t, types.ShiftDef{Start: "07:30", End: "17:06"}, cfg.Shifts["A"])
	assert.Equal(t, types.SourceHTTP, cfg.Sources.Costs.Kind)
	assert.Equal(t, ":3000", cfg.Server.Addr)
	// Defaults fill what the file omits.
	assert.Equal(t, DefaultFinishingDept, cfg.FinishingDepartment)
	assert.Contains(t, cfg.ProgrammedKeywords, "comida")
	assert.Contains(t, cfg.RunningKeywords, "running")
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `sources:
  production: {kind: file, path: prod.csv}
  scrap: {kind: file, path: scrap.csv}
  statusLog: {kind: file, path: wclog.csv}
  costs: {kind: file, path: costs.csv}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)
	assert.Equal(t, float64(DefaultRate), cfg.DefaultRate)
	assert.Equal(t, DefaultStopCapMinutes, cfg.ProgrammedStopCap)
	assert.Contains(t, cfg.Shifts, "C + TE")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/andon.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "invalid: [yaml")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidation_MissingSource(t *testing.T) {
	path := writeConfig(t, `sources:
  production: {kind: file, path: prod.csv}
  scrap: {kind: file, path: scrap.csv}
  statusLog: {kind: file, path: wclog.csv}
`)
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "costs")
}

func TestValidation_BadShiftTime(t *testing.T) {
	path := writeConfig(t, `shifts:
  X:
    start: "25:00"
    end: "17:00"
sources:
  production: {kind: file, path: p.csv}
  scrap: {kind: file, path: s.csv}
  statusLog: {kind: file, path: w.csv}
  costs: {kind: file, path: c.csv}
`)
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shift \"X\"")
}

func TestValidation_BadTimezone(t *testing.T) {
	path := writeConfig(t, `timezone: Not/AZone
sources:
  production: {kind: file, path: p.csv}
  scrap: {kind: file, path: s.csv}
  statusLog: {kind: file, path: w.csv}
  costs: {kind: file, path: c.csv}
`)
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}
