// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the gateway and the
// registry they are exposed from.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "joke_moderator"

// Registry is the registry served on /metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// AppInfo exposes build information as labels; the value is always 1.
var AppInfo = promauto.With(Registry).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "app_info",
		Help:      "Application build information (always 1, details in labels)",
	},
	[]string{"version", "commit", "build_date"},
)

// Upstream call metrics, labelled by store ("submission", "delivery") and
// operation.
var (
	UpstreamRequestsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of calls to the upstream joke stores",
		},
		[]string{"store", "operation", "outcome"},
	)

	UpstreamRequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to the upstream joke stores",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"store", "operation"},
	)
)

// Moderation outcome metrics.
var (
	ModerationDecisionsTotal = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_decisions_total",
			Help:      "Moderation decisions by action and result",
		},
		[]string{"action", "result"},
	)

	// ApprovePartialFailuresTotal counts approvals whose delivery write
	// succeeded but whose submission delete failed. Each of them leaves the
	// joke in both stores until reconciled.
	ApprovePartialFailuresTotal = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "approve_partial_failures_total",
			Help:      "Approvals that created the joke in the delivery store but failed to delete it from the submission store",
		},
	)
)

// SetAppInfo publishes the build information gauge.
func SetAppInfo(version, commit, buildDate string) {
	AppInfo.WithLabelValues(version, commit, buildDate).Set(1)
}
