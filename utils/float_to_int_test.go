// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -100.0, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if diff := math.Abs(float64(got) - float64(tt.want)); diff > 1 {
				t.Errorf("Float32ToInt16(%v) = %v, want %v (diff %v)",
					tt.input, got, tt.want, diff)
			}
		})
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int
		want  float32
	}{
		{name: "zero", input: 0, want: 0},
		{name: "16-bit max", input: 32767, want: 1},
		{name: "16-bit min", input: -32767, want: -1},
		// wider samples are not rescaled to their own depth
		{name: "24-bit value", input: 65534, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := IntToFloat32(tt.input)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("IntToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16Monotonic tests that function is monotonic
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

// TestFloat32ToInt16_ZeroAllocs verifies no heap allocations
func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	floatSamples := make([]float32, 8000)
	int16Samples := make([]int16, 8000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ReportAllocs()

	for b.Loop() {
		for j := range floatSamples {
			int16Samples[j] = Float32ToInt16(floatSamples[j])
		}
	}
}
