// Package metrics keeps in-process Prometheus collectors for a program run.
// Nothing is served over the network; the registry can be dumped as text.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "showcase"

// Metrics holds the collectors updated while sections run.
type Metrics struct {
	SectionsTotal   *prometheus.CounterVec
	SectionDuration *prometheus.HistogramVec
	TotalDuration   prometheus.Histogram
}

// New creates the collectors and registers them with reg. buckets is the
// number of exponential histogram buckets starting at 10µs; values below one
// fall back to prometheus.DefBuckets.
func New(reg prometheus.Registerer, buckets int) (*Metrics, error) {
	b := prometheus.DefBuckets
	if buckets > 0 {
		b = prometheus.ExponentialBuckets(0.00001, 2, buckets)
	}

	m := &Metrics{
		SectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sections_total",
				Help:      "Total number of demo sections run.",
			},
			[]string{"section"},
		),
		SectionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "section_duration_seconds",
				Help:      "Wall-clock duration of each demo section.",
				Buckets:   b,
			},
			[]string{"section"},
		),
		TotalDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall-clock duration of all sections together.",
				Buckets:   b,
			},
		),
	}

	for _, c := range []prometheus.Collector{m.SectionsTotal, m.SectionDuration, m.TotalDuration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return m, nil
}

// Dump writes every metric family gathered from g in the Prometheus text format.
func Dump(g prometheus.Gatherer, w io.Writer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
