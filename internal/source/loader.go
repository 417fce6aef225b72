package source

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/andon-systems/andon/internal/ingest"
	"github.com/andon-systems/andon/internal/metrics"
	"github.com/andon-systems/andon/pkg/types"
)

// Snapshot is one immutable, consistent load of all four datasets. A
// dashboard is only ever computed from a single snapshot; partial loads are
// never exposed.
type Snapshot struct {
	ID         string
	LoadedAt   time.Time
	Production []types.ProductionRecord
	Scrap      []types.ScrapRecord
	StatusLog  []types.Event
	Costs      types.CostTable
}

// Loader fetches and normalizes the four datasets into a Snapshot.
type Loader struct {
	production Source
	scrap      Source
	statusLog  Source
	costs      Source
	normalizer *ingest.Normalizer
}

// NewLoader creates a Loader from the configured sources. The normalizer's
// location determines how CSV timestamps are interpreted.
func NewLoader(cfg types.SourcesConfig, loc *time.Location) (*Loader, error) {
	l := &Loader{normalizer: ingest.NewNormalizer(loc)}
	var err error
	if l.production, err = FromConfig(cfg.Production); err != nil {
		return nil, fmt.Errorf("production source: %w", err)
	}
	if l.scrap, err = FromConfig(cfg.Scrap); err != nil {
		return nil, fmt.Errorf("scrap source: %w", err)
	}
	if l.statusLog, err = FromConfig(cfg.StatusLog); err != nil {
		return nil, fmt.Errorf("status log source: %w", err)
	}
	if l.costs, err = FromConfig(cfg.Costs); err != nil {
		return nil, fmt.Errorf("costs source: %w", err)
	}
	return l, nil
}

// Load fetches and normalizes all four datasets concurrently. Any single
// failure fails the whole load: a dashboard computed from a partial snapshot
// would silently understate KPIs.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	metrics.LoadsTotal.Add(1)

	snap := &Snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := l.production.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("production: %w", err)
		}
		if snap.Production, err = l.normalizer.Production(data); err != nil {
			return fmt.Errorf("production: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		data, err := l.scrap.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("scrap: %w", err)
		}
		if snap.Scrap, err = l.normalizer.Scrap(data); err != nil {
			return fmt.Errorf("scrap: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		data, err := l.statusLog.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("status log: %w", err)
		}
		if snap.StatusLog, err = l.normalizer.StatusLog(data); err != nil {
			return fmt.Errorf("status log: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		data, err := l.costs.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("costs: %w", err)
		}
		if snap.Costs, err = l.normalizer.Costs(data); err != nil {
			return fmt.Errorf("costs: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.LoadsFailed.Add(1)
		return nil, err
	}

	snap.ID = ulid.Make().String()
	snap.LoadedAt = time.Now()
	return snap, nil
}
