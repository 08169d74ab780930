// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ in length or if any
// element pair differs by more than eps.
func RequireNearlyEqual(t testing.TB, got, want []float32, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(float64(got[i] - want[i])); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf.
func RequireFinite(t testing.TB, samples []float32) {
	t.Helper()

	for i, s := range samples {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			t.Fatalf("index %d: non-finite value %v", i, s)
		}
	}
}

// PeakOf is the largest absolute sample value.
func PeakOf(samples []float32) float32 {
	var m float32
	for _, s := range samples {
		m = max(m, float32(math.Abs(float64(s))))
	}
	return m
}
