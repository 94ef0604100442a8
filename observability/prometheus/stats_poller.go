package prometheus

import (
	"context"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/utkarsh5026/iterpar/pool"
)

// StatsProvider reports a point-in-time snapshot of a pool.
type StatsProvider interface {
	Stats() pool.Stats
}

// StatsPoller periodically copies pool Stats() snapshots into gauges.
type StatsPoller struct {
	interval time.Duration

	poolsMu sync.RWMutex
	pools   map[string]StatsProvider

	queued    *prom.GaugeVec
	active    *prom.GaugeVec
	workers   *prom.GaugeVec
	completed *prom.GaugeVec
	failed    *prom.GaugeVec
	closed    *prom.GaugeVec

	stateMu sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewStatsPoller creates a poller and registers its collectors.
func NewStatsPoller(namespace string, reg prom.Registerer, interval time.Duration) (*StatsPoller, error) {
	if namespace == "" {
		namespace = "iterpar"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if interval <= 0 {
		interval = time.Second
	}

	gauge := func(name, help string) *prom.GaugeVec {
		return prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, []string{"pool"})
	}

	p := &StatsPoller{
		interval:  interval,
		pools:     make(map[string]StatsProvider),
		queued:    gauge("pool_queued", "Queued tasks per pool."),
		active:    gauge("pool_active", "Running tasks per pool."),
		workers:   gauge("pool_workers", "Worker count per pool."),
		completed: gauge("pool_completed", "Completed task count snapshot."),
		failed:    gauge("pool_failed", "Failed task count snapshot."),
		closed:    gauge("pool_closed", "Pool closed state (1=closed, 0=open)."),
	}

	for _, g := range []**prom.GaugeVec{&p.queued, &p.active, &p.workers, &p.completed, &p.failed, &p.closed} {
		registered, err := registerCollector(reg, *g)
		if err != nil {
			return nil, err
		}
		*g = registered
	}
	return p, nil
}

// AddPool adds or replaces a provider by name.
func (p *StatsPoller) AddPool(name string, provider StatsProvider) {
	if p == nil || provider == nil {
		return
	}
	name = normalizeLabel(name, "pool")
	p.poolsMu.Lock()
	p.pools[name] = provider
	p.poolsMu.Unlock()
}

// Start begins periodic polling; repeated calls are no-ops.
func (p *StatsPoller) Start(ctx context.Context) {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if p.running {
		p.stateMu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true
	p.stateMu.Unlock()

	go p.loop(pollCtx, p.done)
}

// Stop stops polling and takes a final snapshot; repeated calls are safe.
func (p *StatsPoller) Stop() {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if !p.running {
		p.stateMu.Unlock()
		return
	}
	cancel, done := p.cancel, p.done
	p.running = false
	p.cancel = nil
	p.done = nil
	p.stateMu.Unlock()

	cancel()
	<-done
	p.Collect()
}

func (p *StatsPoller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Collect()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Collect()
		}
	}
}

// Collect takes one snapshot of every registered pool.
func (p *StatsPoller) Collect() {
	p.poolsMu.RLock()
	defer p.poolsMu.RUnlock()

	for name, provider := range p.pools {
		stats := provider.Stats()
		p.queued.WithLabelValues(name).Set(float64(stats.Queued))
		p.active.WithLabelValues(name).Set(float64(stats.Active))
		p.workers.WithLabelValues(name).Set(float64(stats.Workers))
		p.completed.WithLabelValues(name).Set(float64(stats.Completed))
		p.failed.WithLabelValues(name).Set(float64(stats.Failed))
		if stats.Closed {
			p.closed.WithLabelValues(name).Set(1)
		} else {
			p.closed.WithLabelValues(name).Set(0)
		}
	}
}
