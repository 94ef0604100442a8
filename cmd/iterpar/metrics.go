package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// printMetrics renders every gathered sample of reg as a table.
func printMetrics(reg *prom.Registry) {
	families, err := reg.Gather()
	if err != nil {
		colorPrintf(red, "Error gathering metrics: %v\n", err)
		return
	}

	printSectionHeader("POOL METRICS")
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Metric", "Labels", "Value")

	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			_ = table.Append(mf.GetName(), formatLabels(m.GetLabel()), formatValue(mf.GetType(), m))
		}
	}

	if err := table.Render(); err != nil {
		colorPrintLn(red, "Error in rendering metrics table")
	}
}

func formatLabels(labels []*dto.LabelPair) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.GetName()+"="+l.GetValue())
	}
	return strings.Join(parts, ",")
}

func formatValue(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		if h.GetSampleCount() == 0 {
			return "count=0"
		}
		mean := h.GetSampleSum() / float64(h.GetSampleCount())
		return fmt.Sprintf("count=%d mean=%.6fs", h.GetSampleCount(), mean)
	}
	return "-"
}
