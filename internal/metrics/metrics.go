package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const labelHolder = "holder"

// Constructions counts instance constructions per holder name.
// It satisfies singleton.Metrics and is safe for concurrent use.
//
// Each value owns a private prometheus.Registry, so several can coexist
// (one per CLI run, one per test) without clashing on the default registerer.
type Constructions struct {
	reg     *prometheus.Registry
	counter *prometheus.CounterVec
}

func NewConstructions() *Constructions {
	c := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "patterns",
			Subsystem: "singleton",
			Name:      "constructions_total",
			Help:      "Instances constructed, by holder.",
		},
		[]string{labelHolder},
	)
	reg := prometheus.NewRegistry()
	reg.MustRegister(c)
	return &Constructions{reg: reg, counter: c}
}

// Inc records one construction for holder name.
func (c *Constructions) Inc(name string) {
	c.counter.WithLabelValues(name).Inc()
}

// WriteText writes every counter to w in the Prometheus text exposition format.
func (c *Constructions) WriteText(w io.Writer) error {
	families, err := c.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Snapshot returns the current count per holder.
func (c *Constructions) Snapshot() (map[string]float64, error) {
	families, err := c.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	out := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			out[holderOf(m)] += m.GetCounter().GetValue()
		}
	}
	return out, nil
}

func holderOf(m *dto.Metric) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == labelHolder {
			return lp.GetValue()
		}
	}
	return ""
}

// FormatSnapshot renders counts as "{a=1, b=2}" in key order.
func FormatSnapshot(vals map[string]float64) string {
	if len(vals) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(vals))
	for k, v := range vals {
		parts = append(parts, fmt.Sprintf("%s=%g", k, v))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
