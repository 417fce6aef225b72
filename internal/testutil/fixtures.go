// Package testutil provides shared CSV fixtures for integration-style tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andon-systems/andon/pkg/types"
)

// Sample export content for one plant day (2025-11-13, shift A). WC-01 runs
// a meal stop from 09:00 to 09:50 so the 30-minute cap split is visible end
// to end.
const (
	ProductionCSV = `Date,Workcenter,Quantity,Part
"11/13/2025, 8:00 AM",WC-01,60,P-100
"11/13/2025, 9:00 AM",WC-01,40,P-100
"11/13/2025, 10:00 AM",WC-02,30,P-200
`
	ScrapCSV = `Report Date,Time Scrapped,Workcenter,Department,Quantity,Scrap Reason,Extended Cost
11/13/2025,9:30 AM,WC-01,Acabados,2,Flash,$80.00
11/13/2025,10:15 AM,WC-01,Moldeo,1,Burn,$500.00
`
	StatusLogCSV = `Date,Time,Workcenter,Status,Hours
11/13/2025,7:30 AM,WC-01,Producción,
11/13/2025,9:00 AM,WC-01,Comida,
11/13/2025,9:50 AM,WC-01,Producción,
11/13/2025,7:30 AM,WC-02,Producción,
`
	CostsCSV = `Description,Cost
P-100,$2.00
P-200,$3.50
`
)

// WriteDataset writes content into dir and returns a file source pointing at it.
func WriteDataset(t *testing.T, dir, name, content string) types.SourceConfig {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return types.SourceConfig{Kind: types.SourceFile, Path: path}
}

// SampleSources writes the sample plant day into a temp directory and
// returns the four configured sources.
func SampleSources(t *testing.T) types.SourcesConfig {
	t.Helper()
	dir := t.TempDir()
	return types.SourcesConfig{
		Production: WriteDataset(t, dir, "production.csv", ProductionCSV),
		Scrap:      WriteDataset(t, dir, "scrap.csv", ScrapCSV),
		StatusLog:  WriteDataset(t, dir, "wclog.csv", StatusLogCSV),
		Costs:      WriteDataset(t, dir, "costs.csv", CostsCSV),
	}
}
