// Copyright (c) 2025 The Sigana Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package anthropometry

import (
	"reflect"
	"sync"
	"testing"
)

func TestCalculate_WeightAtMedian(t *testing.T) {
	// Boy, 6 months, weight-for-age row (L=0.008, M=7.9224, S=0.11009).
	res := Calculate(Measurement{
		AgeMonths:  6,
		WeightKg:   7.9224,
		HeightCm:   67.6236,
		HeadCircCm: 43.3306,
		ArmCircCm:  14.4573,
		Sex:        Male,
	})

	if z := res.ZScores[WeightForAge]; !approxEqual(z, 0, tolerance) {
		t.Errorf("expected weight-for-age Z=0, got %v", z)
	}
	if label := res.Labels[WeightForAge]; label != "Normal" {
		t.Errorf("expected Normal, got %q", label)
	}
	if res.Severity != Green {
		t.Errorf("expected green, got %s (scores %v)", res.Severity, res.ZScores)
	}
	if len(res.Unavailable) != 0 {
		t.Errorf("expected every table available, missing %v", res.Unavailable)
	}
}

func TestCalculate_AtRiskOfOverweight(t *testing.T) {
	ref, err := NewReference(GrowthStandard{Sex: Male, Metric: WeightForAge, Points: []LMSRecord{
		{At: 12, L: 0.0324, M: 9.648, S: 0.11181},
	}})
	if err != nil {
		t.Fatalf("NewReference failed: %v", err)
	}

	res := ref.Calculate(Measurement{
		AgeMonths:  12,
		WeightKg:   11,
		HeightCm:   75.7477,
		HeadCircCm: 46.0661,
		ArmCircCm:  15.1946,
		Sex:        Male,
	})

	z := res.ZScores[WeightForAge]
	if z <= 1 || z >= 1.3 {
		t.Errorf("expected weight-for-age Z in (1, 1.3), got %v", z)
	}
	if label := res.Labels[WeightForAge]; label != "At risk of overweight" {
		t.Errorf("expected At risk of overweight, got %q", label)
	}
	if res.Severity != Green {
		t.Errorf("expected green, got %s (scores %v)", res.Severity, res.ZScores)
	}
}

func TestCalculate_FirstBirthdayBoyWeight(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		label  string
		check  func(z float64) bool
	}{
		{"median", 9.8756, "Normal", func(z float64) bool { return approxEqual(z, 0, tolerance) }},
		{"11 kg", 11, "Normal", func(z float64) bool { return z > 0.9 && z < 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate(Measurement{AgeMonths: 12, WeightKg: tt.weight, HeightCm: 75.7477, HeadCircCm: 46.0661, ArmCircCm: 15.1946, Sex: Male})
			if z := res.ZScores[WeightForAge]; !tt.check(z) {
				t.Errorf("unexpected weight-for-age Z %v", z)
			}
			if label := res.Labels[WeightForAge]; label != tt.label {
				t.Errorf("expected %q, got %q", tt.label, label)
			}
		})
	}
}

func TestCalculate_SeverelyStunted(t *testing.T) {
	// Boy, 12 months, 68 cm against length-for-age median 75.75.
	res := Calculate(Measurement{
		AgeMonths:  12,
		WeightKg:   9.8756,
		HeightCm:   68,
		HeadCircCm: 46.0661,
		ArmCircCm:  15.1946,
		Sex:        Male,
	})

	if z := res.ZScores[HeightForAge]; z >= -3 {
		t.Errorf("expected height-for-age Z below -3, got %v", z)
	}
	if label := res.Labels[HeightForAge]; label != "Severely Stunted" {
		t.Errorf("expected Severely Stunted, got %q", label)
	}
	if res.Severity != Red {
		t.Errorf("expected red, got %s", res.Severity)
	}
}

func TestCalculate_InterpolatedAge(t *testing.T) {
	// 3 months falls between the 1 and 6 month length rows.
	prev, next := heightForAgeGirls[1], heightForAgeGirls[2]
	median := prev.M + (next.M-prev.M)*0.4

	res := Calculate(Measurement{
		AgeMonths:  3,
		WeightKg:   5.8427,
		HeightCm:   median,
		HeadCircCm: 39.5328,
		ArmCircCm:  13.0221,
		Sex:        Female,
	})

	if z := res.ZScores[HeightForAge]; !approxEqual(z, 0, tolerance) {
		t.Errorf("expected length-for-age Z=0 at interpolated median, got %v", z)
	}
	if z := res.ZScores[WeightForAge]; !approxEqual(z, 0, tolerance) {
		t.Errorf("expected weight-for-age Z=0 at tabulated median, got %v", z)
	}
}

func TestCalculate_AllSixMetricsReported(t *testing.T) {
	res := Calculate(Measurement{AgeMonths: 24, WeightKg: 12, HeightCm: 87, HeadCircCm: 48, ArmCircCm: 15.5, Sex: Female})

	if len(res.ZScores) != len(Metrics) || len(res.Labels) != len(Metrics) {
		t.Fatalf("expected %d metrics, got %d scores and %d labels", len(Metrics), len(res.ZScores), len(res.Labels))
	}
	for _, m := range Metrics {
		if res.Labels[m] == "" {
			t.Errorf("missing label for %s", m)
		}
	}
}

func TestCalculate_MissingTableIsInert(t *testing.T) {
	ref, err := NewReference(GrowthStandard{Sex: Male, Metric: WeightForAge, Points: weightForAgeBoys})
	if err != nil {
		t.Fatalf("NewReference failed: %v", err)
	}

	res := ref.Calculate(Measurement{AgeMonths: 12, WeightKg: 9.8756, HeightCm: 40, HeadCircCm: 1, ArmCircCm: 1, Sex: Male})

	if len(res.Unavailable) != len(Metrics)-1 {
		t.Fatalf("expected %d unavailable metrics, got %v", len(Metrics)-1, res.Unavailable)
	}
	for _, m := range res.Unavailable {
		if res.ZScores[m] != 0 {
			t.Errorf("expected Z=0 for %s, got %v", m, res.ZScores[m])
		}
		if res.Labels[m] != ladders[m].fallback {
			t.Errorf("expected %q for %s, got %q", ladders[m].fallback, m, res.Labels[m])
		}
	}
	// The absurd head, arm and height values would be red if they were scored.
	if res.Severity != Green {
		t.Errorf("expected green, got %s", res.Severity)
	}

	// Girls have no tables at all in this reference.
	girl := ref.Calculate(Measurement{AgeMonths: 12, WeightKg: 1, HeightCm: 40, HeadCircCm: 1, ArmCircCm: 1, Sex: Female})
	if len(girl.Unavailable) != len(Metrics) || girl.Severity != Green {
		t.Errorf("expected every metric unavailable and green, got %v / %s", girl.Unavailable, girl.Severity)
	}
}

func TestCalculate_WeightForHeightUsesHeight(t *testing.T) {
	ref, err := NewReference(GrowthStandard{Sex: Female, Metric: WeightForHeight, Points: []LMSRecord{
		{At: 60, L: 1, M: 6, S: 0.1},
		{At: 80, L: 1, M: 10, S: 0.1},
	}})
	if err != nil {
		t.Fatalf("NewReference failed: %v", err)
	}

	// Age 50 would clamp to the 80 cm row; height 70 interpolates to M=8.
	res := ref.Calculate(Measurement{AgeMonths: 50, WeightKg: 8, HeightCm: 70, HeadCircCm: 45, ArmCircCm: 15, Sex: Female})

	if z := res.ZScores[WeightForHeight]; !approxEqual(z, 0, tolerance) {
		t.Errorf("expected weight-for-height Z=0, got %v", z)
	}
}

func TestCalculate_BMIFeedsBMIForAge(t *testing.T) {
	ref, err := NewReference(GrowthStandard{Sex: Male, Metric: BMIForAge, Points: []LMSRecord{
		{At: 0, L: 1, M: 16, S: 0.1},
	}})
	if err != nil {
		t.Fatalf("NewReference failed: %v", err)
	}

	// 16 kg at 100 cm is BMI 16, the median.
	res := ref.Calculate(Measurement{AgeMonths: 30, WeightKg: 16, HeightCm: 100, HeadCircCm: 48, ArmCircCm: 16, Sex: Male})
	if z := res.ZScores[BMIForAge]; !approxEqual(z, 0, tolerance) {
		t.Errorf("expected BMI-for-age Z=0, got %v", z)
	}
	if label := res.Labels[BMIForAge]; label != "Good" {
		t.Errorf("expected Good, got %q", label)
	}
}

func TestBMI(t *testing.T) {
	testCases := []struct {
		weight, height, want float64
	}{
		{16, 100, 16},
		{9, 75, 16},
		{12, 87, 12 / (0.87 * 0.87)},
	}

	for _, tc := range testCases {
		if got := BMI(tc.weight, tc.height); !approxEqual(got, tc.want, 1e-9) {
			t.Errorf("BMI(%v, %v): expected %v, got %v", tc.weight, tc.height, tc.want, got)
		}
	}
}

func TestCalculate_Concurrent(t *testing.T) {
	inputs := []Measurement{
		{AgeMonths: 6, WeightKg: 7.9, HeightCm: 67, HeadCircCm: 43, ArmCircCm: 14, Sex: Male},
		{AgeMonths: 12, WeightKg: 7.1, HeightCm: 70, HeadCircCm: 43, ArmCircCm: 12.2, Sex: Female},
		{AgeMonths: 40, WeightKg: 14, HeightCm: 98, HeadCircCm: 49, ArmCircCm: 16, Sex: Male},
	}
	want := make([]Result, len(inputs))
	for i, in := range inputs {
		want[i] = Calculate(in)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				if got := Calculate(in); !reflect.DeepEqual(got, want[i]) {
					errs <- "concurrent result differs from sequential result"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
