// Package commands implements the andon CLI subcommands.
package commands

import (
	"fmt"
	"time"

	"github.com/andon-systems/andon/internal/config"
	"github.com/andon-systems/andon/internal/engine"
	"github.com/andon-systems/andon/internal/kpi"
	"github.com/andon-systems/andon/internal/shiftcal"
	"github.com/andon-systems/andon/internal/source"
	"github.com/andon-systems/andon/internal/taxonomy"
	"github.com/andon-systems/andon/internal/timeline"
	"github.com/andon-systems/andon/pkg/types"
)

// stack is the wired application: everything a command needs to compute or
// serve dashboards.
type stack struct {
	cfg    *types.AppConfig
	loc    *time.Location
	engine *engine.Engine
	store  *source.Store
	ttl    time.Duration
}

// buildStack loads the config file and wires the engine and snapshot store.
func buildStack(configPath string) (*stack, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone: %w", err)
	}

	shifts, err := shiftcal.NewRegistry(cfg.Shifts, loc)
	if err != nil {
		return nil, fmt.Errorf("building shift registry: %w", err)
	}

	classifier := taxonomy.New(cfg.Taxonomy, cfg.ProgrammedKeywords, cfg.RunningKeywords)
	builder := timeline.NewBuilder(classifier, cfg.ProgrammedStopCap)
	aggregator := kpi.NewAggregator(cfg.FinishingDepartment)
	eng := engine.New(shifts, classifier, builder, aggregator, cfg.DefaultRate, loc)

	loader, err := source.NewLoader(cfg.Sources, loc)
	if err != nil {
		return nil, fmt.Errorf("building loader: %w", err)
	}

	ttl, err := time.ParseDuration(cfg.RefreshInterval)
	if err != nil || ttl <= 0 {
		ttl = time.Minute
	}

	return &stack{
		cfg:    cfg,
		loc:    loc,
		engine: eng,
		store:  source.NewStore(loader, ttl, nil),
		ttl:    ttl,
	}, nil
}
