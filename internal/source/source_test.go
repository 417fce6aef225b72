package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andon-systems/andon/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource(t *testing.T) {
	path := writeFile(t, "prod.csv", "Date,Workcenter,Quantity\n")

	s := NewFileSource(path)
	data, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Date,Workcenter,Quantity\n", string(data))
}

func TestFileSourceMissing(t *testing.T) {
	s := NewFileSource("/nonexistent/export.csv")
	_, err := s.Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Status\nComida\n"))
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL, srv.Client())
	data, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Comida")
}

func TestHTTPSourceErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL, srv.Client())
	_, err := s.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestHTTPSourceBreakerOpens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewHTTPSource(srv.URL, srv.Client())
	for i := 0; i < 3; i++ {
		_, err := s.Fetch(context.Background())
		require.Error(t, err)
	}

	// Breaker is now open: the request never reaches the server.
	_, err := s.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}

func TestFromConfig(t *testing.T) {
	s, err := FromConfig(types.SourceConfig{Kind: types.SourceFile, Path: "a.csv"})
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, s)

	s, err = FromConfig(types.SourceConfig{Kind: types.SourceHTTP, URL: "http://example.com"})
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, s)

	_, err = FromConfig(types.SourceConfig{Kind: "ftp"})
	assert.Error(t, err)
}
