// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dlist"

type metrics struct {
	ops     *prometheus.CounterVec
	absent  *prometheus.CounterVec
	size    prometheus.Gauge
	elapsed prometheus.Summary
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	m := &metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops",
			Help:      "number of container operations run",
		}, []string{"op"}),
		absent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "absent",
			Help:      "number of container operations that returned no element",
		}, []string{"op"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "size",
			Help:      "number of elements in the container",
		}),
		elapsed: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "op_seconds",
			Help:      "time spent running a single container operation",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.ops),
		r.Register(m.absent),
		r.Register(m.size),
		r.Register(m.elapsed),
	)
	return r, m, errs.Err
}

func (m *metrics) observe(op Op, absent bool, size int, seconds float64) {
	m.ops.WithLabelValues(string(op)).Inc()
	if absent {
		m.absent.WithLabelValues(string(op)).Inc()
	}
	m.size.Set(float64(size))
	m.elapsed.Observe(seconds)
}
