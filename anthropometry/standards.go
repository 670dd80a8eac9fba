// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package anthropometry

import (
	"errors"
	"fmt"
	"slices"
)

// Sex selects the reference curves for a child.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts the API spelling (male/female) and the field-form codes
// L (laki-laki) and P (perempuan).
func ParseSex(s string) (Sex, error) {
	switch s {
	case "male", "Male", "L":
		return Male, nil
	case "female", "Female", "P":
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

// Metric identifies one anthropometric indicator.
type Metric string

const (
	WeightForAge            Metric = "weight_for_age"
	HeightForAge            Metric = "height_for_age"
	WeightForHeight         Metric = "weight_for_height"
	HeadCircumferenceForAge Metric = "head_circumference"
	ArmCircumferenceForAge  Metric = "arm_circumference"
	BMIForAge               Metric = "bmi_for_age"
)

// Metrics lists every indicator in reporting order.
var Metrics = []Metric{
	WeightForAge,
	HeightForAge,
	WeightForHeight,
	HeadCircumferenceForAge,
	ArmCircumferenceForAge,
	BMIForAge,
}

var (
	ErrUnknownSex     = errors.New("unknown sex")
	ErrEmptyStandard  = errors.New("growth standard has no points")
	ErrUnsortedPoints = errors.New("growth standard points not strictly ascending")
	ErrInvalidLMS     = errors.New("growth standard has non-positive M or S")
	ErrDuplicateCurve = errors.New("duplicate growth standard")
	ErrUnknownMetric  = errors.New("unknown metric")
)

// LMSRecord is one calibration point of a reference curve. At is the age in
// months, except for weight-for-height where it is the length/height in cm.
type LMSRecord struct {
	At float64 `json:"at"`
	L  float64 `json:"l"`
	M  float64 `json:"m"`
	S  float64 `json:"s"`
}

// GrowthStandard is the reference curve of one metric for one sex.
type GrowthStandard struct {
	Sex    Sex
	Metric Metric
	Points []LMSRecord
}

type curveKey struct {
	sex    Sex
	metric Metric
}

// Reference is an immutable set of growth standards, at most one per
// (sex, metric) pair. It is safe for concurrent use.
type Reference struct {
	curves map[curveKey][]LMSRecord
}

// NewReference validates the standards and builds a Reference from copies of
// their points.
func NewReference(standards ...GrowthStandard) (*Reference, error) {
	ref := &Reference{curves: make(map[curveKey][]LMSRecord, len(standards))}
	for _, gs := range standards {
		if err := gs.validate(); err != nil {
			return nil, fmt.Errorf("%s/%s: %w", gs.Sex, gs.Metric, err)
		}
		key := curveKey{gs.Sex, gs.Metric}
		if _, ok := ref.curves[key]; ok {
			return nil, fmt.Errorf("%s/%s: %w", gs.Sex, gs.Metric, ErrDuplicateCurve)
		}
		ref.curves[key] = slices.Clone(gs.Points)
	}
	return ref, nil
}

func (gs GrowthStandard) validate() error {
	if gs.Sex != Male && gs.Sex != Female {
		return ErrUnknownSex
	}
	if !slices.Contains(Metrics, gs.Metric) {
		return ErrUnknownMetric
	}
	if len(gs.Points) == 0 {
		return ErrEmptyStandard
	}
	for i, p := range gs.Points {
		if !(p.M > 0) || !(p.S > 0) {
			return fmt.Errorf("%w at %v", ErrInvalidLMS, p.At)
		}
		if i > 0 && !(p.At > gs.Points[i-1].At) {
			return fmt.Errorf("%w at %v", ErrUnsortedPoints, p.At)
		}
	}
	return nil
}

// Lookup returns a copy of the curve for (sex, metric), or false when the
// reference has no table for that pair.
func (r *Reference) Lookup(sex Sex, metric Metric) (GrowthStandard, bool) {
	points, ok := r.points(sex, metric)
	if !ok {
		return GrowthStandard{}, false
	}
	return GrowthStandard{Sex: sex, Metric: metric, Points: slices.Clone(points)}, true
}

func (r *Reference) points(sex Sex, metric Metric) ([]LMSRecord, bool) {
	if r == nil {
		return nil, false
	}
	points, ok := r.curves[curveKey{sex, metric}]
	return points, ok
}

var defaultReference = mustReference(builtinStandards()...)

// Default returns the built-in WHO Child Growth Standards reference
// (Permenkes No. 2 Tahun 2020), 0-60 months.
func Default() *Reference {
	return defaultReference
}

func mustReference(standards ...GrowthStandard) *Reference {
	ref, err := NewReference(standards...)
	if err != nil {
		panic(fmt.Sprintf("anthropometry: built-in reference: %v", err))
	}
	return ref
}
