// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics counts submission outcomes for prometheus
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikpaszkowski/rentald/submission"
)

const namespace = "rentald"

// Metrics - the collectors fed by submission records
type Metrics struct {
	registry      *prometheus.Registry
	submissions   *prometheus.CounterVec
	stageFailures *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New - create and register the collectors on a private registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submissions by transaction type and outcome.",
		}, []string{"type", "outcome"}),
		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Submissions that failed before a ledger result was received.",
		}, []string{"stage"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_seconds",
			Help:      "Time from start of completion to final stage.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"type"}),
	}
	m.registry.MustRegister(m.submissions, m.stageFailures, m.latency)
	m.registry.MustRegister(prometheus.NewGoCollector())
	return m
}

// Observe - implements submission.Observer
func (m *Metrics) Observe(record submission.Record) {
	kind := record.Kind.String()
	m.latency.WithLabelValues(kind).Observe(record.Duration.Seconds())

	switch record.Stage {
	case submission.StageDone, submission.StageClassify:
		m.submissions.WithLabelValues(kind, record.Outcome.String()).Inc()
	default:
		m.stageFailures.WithLabelValues(string(record.Stage)).Inc()
	}
}

// Registry - for gathering in tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler - the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
