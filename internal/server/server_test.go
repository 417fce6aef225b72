package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andon-systems/andon/internal/config"
	"github.com/andon-systems/andon/internal/engine"
	"github.com/andon-systems/andon/internal/kpi"
	"github.com/andon-systems/andon/internal/shiftcal"
	"github.com/andon-systems/andon/internal/source"
	"github.com/andon-systems/andon/internal/taxonomy"
	"github.com/andon-systems/andon/internal/timeline"
	"github.com/andon-systems/andon/pkg/types"
)

func writeDataset(t *testing.T, dir, name, content string) types.SourceConfig {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return types.SourceConfig{Kind: types.SourceFile, Path: path}
}

func newTestServer(t *testing.T, breakProduction bool) *Server {
	t.Helper()
	dir := t.TempDir()
	sources := types.SourcesConfig{
		Production: writeDataset(t, dir, "prod.csv",
			"Date,Workcenter,Quantity,Part\n\"11/13/2025, 8:00 AM\",WC-01,60,P-100\n\"11/13/2025, 9:00 AM\",WC-02,40,P-100\n"),
		Scrap: writeDataset(t, dir, "scrap.csv",
			"Report Date,Time Scrapped,Workcenter,Department,Quantity,Scrap Reason,Extended Cost\n11/13/2025,9:30 AM,WC-01,Acabados,2,Flash,$80.00\n"),
		StatusLog: writeDataset(t, dir, "wclog.csv",
			"Date,Time,Workcenter,Status,Hours\n11/13/2025,7:30 AM,WC-01,Producción,\n11/13/2025,7:30 AM,WC-02,Producción,\n"),
		Costs: writeDataset(t, dir, "costs.csv", "Description,Cost\nP-100,$2.00\n"),
	}
	if breakProduction {
		sources.Production = types.SourceConfig{Kind: types.SourceFile, Path: "/nonexistent/prod.csv"}
	}

	shifts, err := shiftcal.NewRegistry(config.DefaultShifts(), time.UTC)
	require.NoError(t, err)
	classifier := taxonomy.New(nil, config.DefaultProgrammedKeywords(), config.DefaultRunningKeywords())
	eng := engine.New(shifts, classifier, timeline.NewBuilder(classifier, 30), kpi.NewAggregator("acabados"), 50, time.UTC)

	loader, err := source.NewLoader(sources, time.UTC)
	require.NoError(t, err)
	store := source.NewStore(loader, time.Minute, nil)

	return New(":0", eng, store, nil)
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWorkcenters(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/workcenters")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Workcenters []string `json:"workcenters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"WC-01", "WC-02"}, body.Workcenters)
}

func TestShifts(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/shifts")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Shifts map[string]types.ShiftDef `json:"shifts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, types.ShiftDef{Start: "07:30", End: "17:06"}, body.Shifts["A"])
	assert.Contains(t, body.Shifts, "C + TE")
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/dashboard?date=2025-11-13&shift=A")

	require.Equal(t, http.StatusOK, rec.Code)
	var dash types.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))

	assert.NotEmpty(t, dash.SnapshotID)
	assert.Equal(t, "A", dash.Window.Code)
	assert.Equal(t, float64(100), dash.KPIs.ActualOutput)
	assert.Equal(t, float64(80), dash.KPIs.ScrapValue)
	assert.Len(t, dash.Timeline, 2)
	assert.Len(t, dash.Hourly, 10)
}

func TestDashboardWorkcenterFilter(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/dashboard?date=2025-11-13&shift=A&wc=WC-02")

	require.Equal(t, http.StatusOK, rec.Code)
	var dash types.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, []string{"WC-02"}, dash.Workcenters)
	assert.Equal(t, float64(40), dash.KPIs.ActualOutput)
}

func TestDashboardUnknownShift(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/dashboard?date=2025-11-13&shift=Z")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown shift")
}

func TestDashboardInvalidDate(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/dashboard?date=13-11-2025&shift=A")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardInvalidRate(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/dashboard?date=2025-11-13&shift=A&rate=fast")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardUpstreamFailure(t *testing.T) {
	s := newTestServer(t, true)
	rec := doRequest(t, s, http.MethodGet, "/api/dashboard?date=2025-11-13&shift=A")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "data sources unavailable")
}

func TestTimeline(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/timeline?date=2025-11-13&shift=A")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		State    types.WindowState          `json:"state"`
		Timeline []types.WorkcenterTimeline `json:"timeline"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Timeline, 2)
	assert.Equal(t, "WC-01", body.Timeline[0].Workcenter)
}

func TestKPIs(t *testing.T) {
	s := newTestServer(t, false)
	rec := doRequest(t, s, http.MethodGet, "/api/kpis?date=2025-11-13&shift=A&rate=100")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		KPIs   types.KPISet        `json:"kpis"`
		Hourly []types.HourlyPoint `json:"hourly"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(100), body.KPIs.ActualOutput)
	assert.Equal(t, float64(100), body.Hourly[0].Target)
}

func TestRefresh(t *testing.T) {
	s := newTestServer(t, false)

	first := doRequest(t, s, http.MethodPost, "/api/refresh")
	require.Equal(t, http.StatusOK, first.Code)
	second := doRequest(t, s, http.MethodPost, "/api/refresh")
	require.Equal(t, http.StatusOK, second.Code)

	var a, b map[string]string
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.NotEqual(t, a["snapshotId"], b["snapshotId"])
}
