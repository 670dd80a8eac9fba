// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/sigana-id/sigana-server/anthropometry"
	"github.com/sigana-id/sigana-server/metrics"
)

// assess runs the calculator, reports any curve that had to be skipped and
// counts the result. source labels the metric ("measurement" or "calculate").
func assess(ref *anthropometry.Reference, m anthropometry.Measurement, source string) anthropometry.Result {
	res := ref.Calculate(m)

	for _, metric := range res.Unavailable {
		slog.Warn("reference table unavailable",
			"metric", metric,
			"sex", m.Sex,
			"source", source,
		)
	}
	metrics.ObserveAssessment(res, m.Sex, source)

	return res
}

// zScoreMap flattens Result.ZScores for JSON
func zScoreMap(res anthropometry.Result) map[string]float64 {
	out := make(map[string]float64, len(res.ZScores))
	for metric, z := range res.ZScores {
		out[string(metric)] = z
	}
	return out
}

func labelMap(res anthropometry.Result) map[string]string {
	out := make(map[string]string, len(res.Labels))
	for metric, label := range res.Labels {
		out[string(metric)] = label
	}
	return out
}

func metricNames(ms []anthropometry.Metric) []string {
	if len(ms) == 0 {
		return nil
	}
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = string(m)
	}
	return out
}

// hasMinLength reports whether s, trimmed, has at least n characters
func hasMinLength(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}
