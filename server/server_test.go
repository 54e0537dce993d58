package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/lineage/analysis"
	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/dataset"
	"github.com/teranos/lineage/graph"
	"github.com/teranos/lineage/ingest"
	lineagetest "github.com/teranos/lineage/internal/testing"
)

func newTestServer(t *testing.T, load bool, cfg config.ServerConfig) *Server {
	t.Helper()
	path := lineagetest.WriteFile(t, "arbol.csv", lineagetest.SampleCSV)
	loader := ingest.NewLoader(ingest.OptionsFromConfig(config.Default()), zap.NewNop().Sugar())
	store := dataset.NewStore(path, loader, graph.DefaultOptions(), zap.NewNop().Sugar())
	if load {
		_, err := store.Reload(context.Background())
		require.NoError(t, err)
	}
	return New(store, cfg)
}

func get(t *testing.T, s *Server, target string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{})

	var resp HealthResponse
	rec := get(t, s, "/health", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "starting", resp.ServerState)
	assert.Equal(t, 4, resp.Persons)
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestHealth_NoDataset(t *testing.T) {
	s := newTestServer(t, false, config.ServerConfig{})

	var resp HealthResponse
	rec := get(t, s, "/health", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no_data", resp.Status)
}

func TestAPI_NoDataset(t *testing.T) {
	s := newTestServer(t, false, config.ServerConfig{})

	rec := get(t, s, "/api/graph", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "no dataset loaded")
	assert.NotEmpty(t, body.RequestID)
}

func TestAPI_Graph(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{})

	var g graph.Graph
	rec := get(t, s, "/api/graph", &g)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, g.Nodes, 5)
	assert.Len(t, g.Links, 3)
	assert.True(t, g.Meta.Layout.Hierarchical)
}

func TestAPI_Analyses(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{})

	var gens []analysis.GenerationSummary
	require.Equal(t, http.StatusOK, get(t, s, "/api/generations", &gens).Code)
	require.Len(t, gens, 3)
	assert.True(t, gens[0].Complete)
	assert.True(t, gens[1].Complete)
	assert.Equal(t, int64(3), gens[2].Deficit)

	var surnames analysis.SurnameDistribution
	require.Equal(t, http.StatusOK, get(t, s, "/api/surnames", &surnames).Code)
	assert.Equal(t, int64(14), surnames.TotalSlots)

	var counts []analysis.Share
	require.Equal(t, http.StatusOK, get(t, s, "/api/surnames/counts", &counts).Code)
	require.NotEmpty(t, counts)
	assert.Equal(t, "Pérez", counts[0].Name)

	var ages analysis.AgeReport
	require.Equal(t, http.StatusOK, get(t, s, "/api/ages", &ages).Code)
	assert.Len(t, ages.Ages, 2)
	assert.Equal(t, 1, ages.NotApplicable)

	var report analysis.Report
	require.Equal(t, http.StatusOK, get(t, s, "/api/report", &report).Code)
	assert.Equal(t, 4, report.Persons)
}

func TestAPI_Missing(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{})

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantTotal int
	}{
		{"all generations", "/api/missing", http.StatusOK, 1},
		{"generation with gaps", "/api/missing?generation=1", http.StatusOK, 1},
		{"complete generation", "/api/missing?generation=2", http.StatusOK, 0},
		{"not a number", "/api/missing?generation=two", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var report analysis.MissingReport
			rec := get(t, s, tt.target, &report)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode != http.StatusOK {
				var body ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body.Hint)
				return
			}
			assert.Equal(t, tt.wantTotal, report.Total)
			assert.Equal(t, []int{1}, report.Generations, "only generations with gaps are listed")
		})
	}
}

func TestAPI_Places(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{})

	var births BirthPlacesResponse
	require.Equal(t, http.StatusOK, get(t, s, "/api/places/births", &births).Code)
	require.NotEmpty(t, births.Countries)
	assert.Equal(t, "Colombia", births.Countries[0].Name)
	assert.Equal(t, 3, births.Countries[0].Count)

	var deaths DeathPlacesResponse
	require.Equal(t, http.StatusOK, get(t, s, "/api/places/deaths", &deaths).Code)
	assert.Equal(t, []string{"Bogotá", "Tunja"}, deaths.Cities)
	assert.Empty(t, deaths.Deaths)

	require.Equal(t, http.StatusOK, get(t, s, "/api/places/deaths?city=Bogot%C3%A1", &deaths).Code)
	require.Len(t, deaths.Deaths, 1)
	assert.Equal(t, "P1AB-3XY", deaths.Deaths[0].ID)
}

func TestAPI_NotFound(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{})
	rec := get(t, s, "/api/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestID_Propagated(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{})

	id := "5f1c2c1e-8a8e-4b7a-9a55-0d6f2a7c3b11"
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{RequestsPerSecond: 0.001, Burst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, get(t, s, "/health", nil).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCORS(t *testing.T) {
	origin := "http://localhost:5173"
	s := newTestServer(t, true, config.ServerConfig{AllowedOrigins: []string{origin}})

	req := httptest.NewRequest(http.MethodOptions, "/api/graph", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStartStop(t *testing.T) {
	s := newTestServer(t, true, config.ServerConfig{Port: 0})

	errc, err := s.Start()
	require.NoError(t, err)
	assert.Equal(t, ServerStateRunning, s.State())

	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, ServerStateStopped, s.State())

	_, open := <-errc
	assert.False(t, open, "serve loop exits without error after Stop")
}
