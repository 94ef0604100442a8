package main

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/utkarsh5026/iterpar/internal/log"
	"github.com/utkarsh5026/iterpar/observability/prometheus"
	"github.com/utkarsh5026/iterpar/parallel"
	"github.com/utkarsh5026/iterpar/pool"
)

// strategies bundles the executors under comparison with the pool backing
// the pooled one.
type strategies struct {
	executors []parallel.Executor
	pool      *pool.WorkerPool
	poller    *prometheus.StatsPoller
	registry  *prom.Registry
}

func newStrategies(cfg *Config) (*strategies, error) {
	reg := prom.NewRegistry()
	exporter, err := prometheus.NewMetricsExporter("iterpar", reg, prometheus.ExporterOptions{})
	if err != nil {
		return nil, err
	}
	poller, err := prometheus.NewStatsPoller("iterpar", reg, 0)
	if err != nil {
		return nil, err
	}

	opts := []pool.Option{
		pool.WithName("shared"),
		pool.WithMetrics(exporter),
		pool.WithShutdownTimeout(cfg.ShutdownTimeout),
	}
	if cfg.Rate > 0 {
		opts = append(opts, pool.WithRateLimit(cfg.Rate, cfg.Burst))
	}
	if cfg.Pin {
		opts = append(opts, pool.WithCPUAffinity())
	}

	p, err := pool.New(cfg.Workers, opts...)
	if err != nil {
		return nil, err
	}
	poller.AddPool("shared", p)
	log.Verbosef("started pool with %d workers (rate=%v, pin=%v)", cfg.Workers, cfg.Rate, cfg.Pin)

	return &strategies{
		executors: []parallel.Executor{
			parallel.Threads(),
			parallel.OSThreads(),
			parallel.Pooled(p),
		},
		pool:     p,
		poller:   poller,
		registry: reg,
	}, nil
}

func (s *strategies) Close() error {
	err := s.pool.Close()
	s.poller.Collect()
	log.Verbosef("pool closed: %+v", s.pool.Stats())
	return err
}

// closeInto closes s and stores a shutdown failure in *errp unless the
// command already failed for another reason.
func (s *strategies) closeInto(errp *error) {
	if err := s.Close(); err != nil {
		log.Printf("closing pool: %v", err)
		if *errp == nil {
			*errp = fmt.Errorf("closing pool: %w", err)
		}
	}
}
