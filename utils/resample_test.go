// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"slices"
	"testing"
)

func TestResampleLinear_Identity(t *testing.T) {
	t.Parallel()

	inputs := [][]float32{
		{0.5},
		{0, 1, 0, -1},
		{0.1, -0.2, 0.3, -0.4, 0.5, -0.6, 0.7},
	}

	for _, in := range inputs {
		got := ResampleLinear(in, 1.0)
		if !slices.Equal(got, in) {
			t.Errorf("ResampleLinear(%v, 1) = %v, want identity", in, got)
		}
	}
}

func TestResampleLinear_DoesNotAlias(t *testing.T) {
	t.Parallel()

	in := []float32{1, 2, 3}
	out := ResampleLinear(in, 1.0)
	out[0] = 42

	if in[0] != 1 {
		t.Errorf("ResampleLinear output aliases its input: in[0] = %v", in[0])
	}
}

func TestResampleLinear_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		factor  float64
		wantLen int
	}{
		{name: "empty", n: 0, factor: 2, wantLen: 0},
		{name: "halve", n: 100, factor: 2, wantLen: 50},
		{name: "double", n: 100, factor: 0.5, wantLen: 200},
		{name: "floor", n: 10, factor: 3, wantLen: 3},
		{name: "minimum one", n: 3, factor: 10, wantLen: 1},
		{name: "octave up", n: 48000, factor: SemitoneFactor(12), wantLen: 24000},
		{name: "subnormal factor copies", n: 3, factor: 1e-310, wantLen: 3},
		{name: "oversized output copies", n: 1000, factor: 1e-9, wantLen: 1000},
		{name: "negative factor copies", n: 5, factor: -2, wantLen: 5},
		{name: "nan factor copies", n: 4, factor: math.NaN(), wantLen: 4},
		{name: "infinite factor copies", n: 4, factor: math.Inf(1), wantLen: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResampleLinear(make([]float32, tt.n), tt.factor)
			if len(got) != tt.wantLen {
				t.Errorf("len(ResampleLinear(%d samples, %v)) = %d, want %d",
					tt.n, tt.factor, len(got), tt.wantLen)
			}
		})
	}
}

func TestResampleLinear_TinyFactorKeepsSamples(t *testing.T) {
	t.Parallel()

	in := []float32{1, 2, 3}
	if got := ResampleLinear(in, 1e-310); !slices.Equal(got, in) {
		t.Errorf("ResampleLinear(%v, 1e-310) = %v, want a copy", in, got)
	}
}

func TestResampleLinear_Interpolates(t *testing.T) {
	t.Parallel()

	in := []float32{0, 1, 2, 3}
	got := ResampleLinear(in, 0.5)
	want := []float32{0, 0.5, 1, 1.5, 2, 2.5, 3, 3}

	if !slices.Equal(got, want) {
		t.Errorf("ResampleLinear(%v, 0.5) = %v, want %v", in, got, want)
	}
}

func TestResampleRate(t *testing.T) {
	t.Parallel()

	in := make([]float32, 24000)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.01))
	}

	got := ResampleRate(in, 24000, 48000)
	if len(got) != 48000 {
		t.Fatalf("len(ResampleRate(24000 -> 48000)) = %d, want 48000", len(got))
	}

	same := ResampleRate(in, 48000, 48000)
	if !slices.Equal(same, in) {
		t.Error("ResampleRate with equal rates did not return an identical copy")
	}
}

func TestSemitoneFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		semitones float32
		want      float64
	}{
		{0, 1},
		{12, 2},
		{-12, 0.5},
		{7, math.Pow(2, 7.0/12)},
	}

	for _, tt := range tests {
		if got := SemitoneFactor(tt.semitones); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("SemitoneFactor(%v) = %v, want %v", tt.semitones, got, tt.want)
		}
	}
}

func BenchmarkResampleLinear(b *testing.B) {
	in := make([]float32, 96000)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.05))
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = ResampleLinear(in, SemitoneFactor(3))
	}
}
