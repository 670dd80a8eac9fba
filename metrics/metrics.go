// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus instrumentation for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sigana-id/sigana-server/anthropometry"
)

const namespace = "sigana"

var (
	registry = prometheus.NewRegistry()

	assessments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessments_total",
		Help:      "Anthropometric assessments computed, by overall severity and origin.",
	}, []string{"severity", "source"})

	unavailableReference = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reference_unavailable_total",
		Help:      "Metrics scored as Z=0 because no reference table exists for the sex.",
	}, []string{"metric", "sex"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "code"})
)

func init() {
	registry.MustRegister(
		assessments,
		unavailableReference,
		requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveAssessment records one calculator result. source is "measurement"
// for persisted assessments and "calculate" for ad-hoc ones.
func ObserveAssessment(res anthropometry.Result, sex anthropometry.Sex, source string) {
	assessments.WithLabelValues(string(res.Severity), source).Inc()
	for _, m := range res.Unavailable {
		unavailableReference.WithLabelValues(string(m), string(sex)).Inc()
	}
}

// ObserveRequest records the latency of a finished request.
func ObserveRequest(method, route string, code int, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
