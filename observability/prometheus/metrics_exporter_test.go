package prometheus

import (
	"context"
	"errors"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/utkarsh5026/iterpar/pool"
)

func TestMetricsExporter_RecordMethods(t *testing.T) {
	reg := prom.NewRegistry()
	exporter, err := NewMetricsExporter("iterpar", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("NewMetricsExporter failed: %v", err)
	}

	exporter.RecordTaskDuration("pool-a", 250*time.Millisecond)
	exporter.RecordTaskFailure("pool-a", pool.ReasonPanic)
	exporter.RecordQueueDepth("pool-a", 7)
	exporter.RecordTaskRejected("pool-a", pool.ReasonClosed, 3)
	exporter.RecordTaskRejected("pool-a", pool.ReasonClosed, 0)

	if got := testutil.ToFloat64(exporter.taskFailedTotal.WithLabelValues("pool-a", "panic")); got != 1 {
		t.Fatalf("failed total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.queueDepth.WithLabelValues("pool-a")); got != 7 {
		t.Fatalf("queue depth = %v, want 7", got)
	}
	if got := testutil.ToFloat64(exporter.taskRejectedTotal.WithLabelValues("pool-a", "closed")); got != 3 {
		t.Fatalf("rejected total = %v, want 3", got)
	}

	histCount, err := histogramSampleCount(exporter.taskDurationSeconds.WithLabelValues("pool-a"))
	if err != nil {
		t.Fatalf("histogramSampleCount failed: %v", err)
	}
	if histCount != 1 {
		t.Fatalf("duration sample count = %d, want 1", histCount)
	}
}

func TestMetricsExporter_EmptyLabels(t *testing.T) {
	exporter, err := NewMetricsExporter("", prom.NewRegistry(), ExporterOptions{})
	if err != nil {
		t.Fatalf("NewMetricsExporter failed: %v", err)
	}

	exporter.RecordTaskFailure("", "")
	if got := testutil.ToFloat64(exporter.taskFailedTotal.WithLabelValues("unknown", "unknown")); got != 1 {
		t.Fatalf("failed total = %v, want 1", got)
	}
}

func TestMetricsExporter_NilSafe(t *testing.T) {
	var exporter *MetricsExporter
	exporter.RecordTaskDuration("pool-a", time.Second)
	exporter.RecordTaskFailure("pool-a", pool.ReasonError)
	exporter.RecordQueueDepth("pool-a", 1)
	exporter.RecordTaskRejected("pool-a", pool.ReasonClosed, 1)
}

func TestMetricsExporter_AlreadyRegisteredReuse(t *testing.T) {
	reg := prom.NewRegistry()
	first, err := NewMetricsExporter("iterpar", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("first NewMetricsExporter failed: %v", err)
	}
	second, err := NewMetricsExporter("iterpar", reg, ExporterOptions{})
	if err != nil {
		t.Fatalf("second NewMetricsExporter failed: %v", err)
	}

	first.RecordTaskFailure("pool-a", pool.ReasonError)
	second.RecordTaskFailure("pool-a", pool.ReasonError)

	if got := testutil.ToFloat64(first.taskFailedTotal.WithLabelValues("pool-a", "error")); got != 2 {
		t.Fatalf("shared failed counter = %v, want 2", got)
	}
}

func TestMetricsExporter_WiredToPool(t *testing.T) {
	exporter, err := NewMetricsExporter("iterpar", prom.NewRegistry(), ExporterOptions{})
	if err != nil {
		t.Fatalf("NewMetricsExporter failed: %v", err)
	}

	p, err := pool.New(2, pool.WithName("wired"), pool.WithMetrics(exporter))
	if err != nil {
		t.Fatalf("pool.New failed: %v", err)
	}

	err = p.Submit(context.Background(),
		func() error { return nil },
		func() error { return errors.New("boom") },
		func() error { panic("kaboom") },
	)
	if !errors.Is(err, pool.ErrTaskExecutionFailed) {
		t.Fatalf("Submit error = %v, want ErrTaskExecutionFailed", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	_ = p.Submit(context.Background(), func() error { return nil }, func() error { return nil })

	if got := testutil.ToFloat64(exporter.taskFailedTotal.WithLabelValues("wired", "error")); got != 1 {
		t.Errorf("error failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.taskFailedTotal.WithLabelValues("wired", "panic")); got != 1 {
		t.Errorf("panic failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(exporter.taskRejectedTotal.WithLabelValues("wired", "closed")); got != 2 {
		t.Errorf("rejected = %v, want 2", got)
	}

	histCount, err := histogramSampleCount(exporter.taskDurationSeconds.WithLabelValues("wired"))
	if err != nil {
		t.Fatalf("histogramSampleCount failed: %v", err)
	}
	if histCount != 3 {
		t.Errorf("duration sample count = %d, want 3", histCount)
	}
}

func histogramSampleCount(observer prom.Observer) (uint64, error) {
	collector, ok := observer.(prom.Collector)
	if !ok {
		return 0, nil
	}

	metricCh := make(chan prom.Metric, 1)
	collector.Collect(metricCh)
	close(metricCh)
	for metric := range metricCh {
		msg := &dto.Metric{}
		if err := metric.Write(msg); err != nil {
			return 0, err
		}
		if msg.Histogram != nil {
			return msg.Histogram.GetSampleCount(), nil
		}
	}
	return 0, nil
}
