// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package anthropometry

// Severity is the overall triage colour of an assessment.
type Severity string

const (
	Green  Severity = "green"
	Yellow Severity = "yellow"
	Red    Severity = "red"
)

// ParseSeverity accepts the English colours and the Indonesian field codes
// (HIJAU, KUNING, MERAH).
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "green", "HIJAU":
		return Green, true
	case "yellow", "KUNING":
		return Yellow, true
	case "red", "MERAH":
		return Red, true
	}
	return "", false
}

// band is one rung of a label ladder.
type band struct {
	match func(z float64) bool
	label string
}

func below(t float64) func(float64) bool { return func(z float64) bool { return z < t } }
func above(t float64) func(float64) bool { return func(z float64) bool { return z > t } }

// ladders are evaluated top-down; the first matching band wins and the
// fallback label applies when none match.
var ladders = map[Metric]struct {
	bands    []band
	fallback string
}{
	WeightForAge: {[]band{
		{below(-3), "Severely Underweight"},
		{below(-2), "Underweight"},
		{above(1), "At risk of overweight"},
	}, "Normal"},
	HeightForAge: {[]band{
		{below(-3), "Severely Stunted"},
		{below(-2), "Stunted"},
		{above(3), "Tall"},
	}, "Normal"},
	WeightForHeight: {[]band{
		{below(-3), "Severe Wasting"},
		{below(-2), "Wasting"},
		{above(3), "Obese"},
		{above(2), "Overweight"},
		{above(1), "At risk of overweight"},
	}, "Normal"},
	HeadCircumferenceForAge: {[]band{
		{below(-2), "Microcephaly"},
		{above(2), "Macrocephaly"},
	}, "Normal"},
	ArmCircumferenceForAge: {[]band{
		{below(-3), "Severe malnutrition"},
		{below(-2), "Malnutrition"},
		{above(2), "Overnutrition"},
	}, "Good"},
	BMIForAge: {[]band{
		{below(-3), "Severely thin"},
		{below(-2), "Thin"},
		{above(3), "Obese"},
		{above(2), "Overweight"},
		{above(1), "At risk of overweight"},
	}, "Good"},
}

// Label returns the clinical label of z for metric.
func Label(metric Metric, z float64) string {
	ladder, ok := ladders[metric]
	if !ok {
		return ""
	}
	for _, b := range ladder.bands {
		if b.match(z) {
			return b.label
		}
	}
	return ladder.fallback
}

// Classify combines per-metric Z-scores into one severity. Any Red signal
// wins over every Yellow one.
func Classify(zscores map[Metric]float64) Severity {
	for metric, z := range zscores {
		if isRed(metric, z) {
			return Red
		}
	}
	for _, z := range zscores {
		if (z >= -3 && z < -2) || (z > 2 && z <= 3) {
			return Yellow
		}
	}
	return Green
}

func isRed(metric Metric, z float64) bool {
	if z < -3 || z > 3 {
		return true
	}
	// Head circumference escalates at ±2.
	return metric == HeadCircumferenceForAge && (z < -2 || z > 2)
}
