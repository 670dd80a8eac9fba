// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package anthropometry scores child growth measurements against the WHO Child
Growth Standards and triages the child as green, yellow or red.

# Reference Tables

A Reference holds at most one LMS curve per (sex, metric). The built-in one
covers 0-60 months for all six metrics:

	ref := anthropometry.Default()
	curve, ok := ref.Lookup(anthropometry.Female, anthropometry.HeightForAge)

Custom references are validated on construction (non-empty, strictly
ascending, positive M and S):

	ref, err := anthropometry.NewReference(standards...)

# Z-Scores

Interpolate resolves L, M and S at an exact age (or height, for
weight-for-height) and ZScore applies the Box-Cox transform:

	z = ((y/M)^L - 1) / (L*S)     (L != 0)
	z = ln(y/M) / S               (L ~ 0)

# Classification

Each metric's Z-score maps to a clinical label through a ladder of
thresholds (Label). Classify folds all Z-scores into one Severity:

  - red: any |z| > 3, or head circumference |z| > 2
  - yellow: any z in [-3,-2) or (2,3]
  - green: otherwise

# Entry Point

	res := anthropometry.Calculate(anthropometry.Measurement{
		AgeMonths:  float64(anthropometry.AgeInMonths(birthDate, time.Now())),
		WeightKg:   8.4,
		HeightCm:   71.2,
		HeadCircCm: 44.9,
		ArmCircCm:  14.1,
		Sex:        anthropometry.Male,
	})

Every function is pure and safe for concurrent use.
*/
package anthropometry
