package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grupoom/checking-central/internal/model"
	"github.com/grupoom/checking-central/internal/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Server.RatePerSecond = 1000
	cfg.Server.RateBurst = 1000
	return New(cfg, pipeline.NewResolver(cfg), zap.NewNop())
}

func postManifest(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/manifest", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveManifest(t *testing.T) {
	s := newTestServer(t)

	rec := postManifest(t, s, map[string]any{
		"n_pi":            "12345/24",
		"meio":            "PO",
		"status_checking": "",
		"enderecos":       []string{"CLIENTE: X", "Av. Paulista, 1000 - SP"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var m model.RequirementManifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))

	assert.Equal(t, "OD", m.MediaCode)
	assert.True(t, m.Gate.Allowed)
	require.Len(t, m.Locations, 1)
	assert.Equal(t, "Av. Paulista, 1000 - SP", m.Locations[0].Address)
	assert.Len(t, m.Slots, 2)
}

func TestResolveManifest_Blocked(t *testing.T) {
	s := newTestServer(t)

	rec := postManifest(t, s, map[string]any{
		"n_pi":            "9/24",
		"meio":            "OD",
		"status_checking": "ok",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var m model.RequirementManifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.False(t, m.Gate.Allowed)
	assert.Empty(t, m.Slots)
}

func TestResolveManifest_BadRequest(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/manifest", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postManifest(t, s, map[string]any{"meio": "OD"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEndpoint(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Entries []struct {
			Code string `json:"code"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Entries, 16)
}

func TestRateLimit(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Server.RatePerSecond = 1
	cfg.Server.RateBurst = 2
	s := New(cfg, pipeline.NewResolver(cfg), zap.NewNop())

	var limited bool
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
		}
	}
	assert.True(t, limited, "expected a 429 after the burst is spent")
}
