// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package anthropometry

// Measurement is one set of raw field measurements for a child.
type Measurement struct {
	AgeMonths  float64
	WeightKg   float64
	HeightCm   float64
	HeadCircCm float64
	ArmCircCm  float64
	Sex        Sex
}

// Result is the assessment of a Measurement. Unavailable lists the metrics
// that had no reference table and were scored as Z=0.
type Result struct {
	ZScores     map[Metric]float64
	Labels      map[Metric]string
	Severity    Severity
	Unavailable []Metric
}

// Calculate assesses m against the built-in reference.
func Calculate(m Measurement) Result {
	return Default().Calculate(m)
}

// Calculate scores every metric of m, labels each one and derives the overall
// severity. It never fails: a metric without a table degrades to Z=0.
// Inputs are not validated; callers reject non-positive measurements.
func (r *Reference) Calculate(m Measurement) Result {
	res := Result{
		ZScores: make(map[Metric]float64, len(Metrics)),
		Labels:  make(map[Metric]string, len(Metrics)),
	}

	for _, metric := range Metrics {
		x, y := m.AgeMonths, m.value(metric)
		if metric == WeightForHeight {
			x = m.HeightCm
		}

		z := 0.0
		if points, ok := r.points(m.Sex, metric); ok {
			z = ZScore(y, Interpolate(points, x))
		} else {
			res.Unavailable = append(res.Unavailable, metric)
		}
		res.ZScores[metric] = z
		res.Labels[metric] = Label(metric, z)
	}

	res.Severity = Classify(res.ZScores)
	return res
}

// BMI returns the body-mass index in kg/m².
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

func (m Measurement) value(metric Metric) float64 {
	switch metric {
	case WeightForAge, WeightForHeight:
		return m.WeightKg
	case HeightForAge:
		return m.HeightCm
	case HeadCircumferenceForAge:
		return m.HeadCircCm
	case ArmCircumferenceForAge:
		return m.ArmCircCm
	case BMIForAge:
		return BMI(m.WeightKg, m.HeightCm)
	}
	return 0
}
