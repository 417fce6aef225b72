// Package source loads the four plant CSV exports and holds the current
// normalized snapshot behind a refresh TTL.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sony/gobreaker"

	"github.com/andon-systems/andon/internal/metrics"
	"github.com/andon-systems/andon/pkg/types"
)

// Source fetches one raw CSV export.
type Source interface {
	// Fetch returns the raw bytes of the export.
	Fetch(ctx context.Context) ([]byte, error)
	// Name identifies the source for logs and errors.
	Name() string
}

// FileSource reads an export from the local filesystem. Used for development
// and for plants that sync exports to a shared directory.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string { return s.path }

// Fetch reads the file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return data, nil
}

// HTTPSource fetches an export over HTTP. Requests go through a circuit
// breaker so a flapping export store fails fast instead of stalling every
// refresh on timeouts.
type HTTPSource struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewHTTPSource creates an HTTPSource for url. A nil client uses a default
// with a 30 s timeout.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSource{
		url:    url,
		client: client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    url,
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				if to == gobreaker.StateOpen {
					metrics.BreakerOpens.Add(1)
				}
			},
		}),
	}
}

// Name returns the source URL.
func (s *HTTPSource) Name() string { return s.url }

// Fetch performs the HTTP GET through the breaker.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	body, err := s.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.url, err)
	}
	return body.([]byte), nil
}

// FromConfig builds a Source from its configuration.
func FromConfig(cfg types.SourceConfig) (Source, error) {
	switch cfg.Kind {
	case types.SourceFile:
		return NewFileSource(cfg.Path), nil
	case types.SourceHTTP:
		return NewHTTPSource(cfg.URL, nil), nil
	default:
		return nil, fmt.Errorf("unsupported source kind %q", cfg.Kind)
	}
}
