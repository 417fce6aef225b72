// Package metrics exposes runtime counters via expvar.
package metrics

import "expvar"

var (
	LoadsTotal               = expvar.NewInt("loads_total")
	LoadsFailed              = expvar.NewInt("loads_failed")
	SnapshotRefreshes        = expvar.NewInt("snapshot_refreshes")
	ComputationsTotal        = expvar.NewInt("computations_total")
	RowsUnparseableTimestamp = expvar.NewInt("rows_unparseable_timestamp")
	BreakerOpens             = expvar.NewInt("breaker_opens")
)
