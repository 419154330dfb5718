package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-points/internal/domain/play"
	"github.com/riskibarqy/fantasy-points/internal/domain/stats"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
)

// aggregator runs the category passes over one play batch. Passes are
// independent, so they share a bounded worker pool; the tables come back in
// merge order regardless of completion order.
type aggregator struct {
	workers int
	logger  *logging.Logger
}

func newAggregator(workers int, logger *logging.Logger) aggregator {
	if workers < 1 {
		workers = 1
	}
	return aggregator{workers: workers, logger: logger}
}

func (a aggregator) run(ctx context.Context, plays []play.Record) ([]stats.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.aggregateCategories")
	defer span.End()

	tables := make([]stats.Table, len(stats.Specs))
	if a.workers == 1 {
		for i, spec := range stats.Specs {
			tables[i] = a.pass(ctx, spec, plays)
		}
		return tables, nil
	}

	pool, err := ants.NewPool(min(a.workers, len(stats.Specs)))
	if err != nil {
		return nil, fmt.Errorf("create aggregation pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, spec := range stats.Specs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			tables[i] = a.pass(ctx, spec, plays)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit %s pass: %w", spec.Category, err)
		}
	}
	workers.Wait()

	return tables, nil
}

func (a aggregator) pass(ctx context.Context, spec stats.Spec, plays []play.Record) stats.Table {
	start := time.Now()
	table := stats.AggregateCategory(spec, plays)
	a.logger.DebugContext(ctx, "category aggregated",
		"category", spec.Category,
		"rows", len(table.Rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return table
}
