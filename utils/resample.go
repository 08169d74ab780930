// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// maxResampleLen bounds ResampleLinear output, about 12 hours at 48 kHz.
const maxResampleLen = math.MaxInt32

// ResampleLinear stretches samples by factor using linear interpolation.
//
// The output holds floor(len(samples)/factor) samples, never fewer than one
// for non-empty input. Output sample n is read at fractional position
// n*factor; the right-hand interpolation point is clamped to the last
// sample. A factor of 1 yields an identical copy. The input is never
// modified.
//
// factor > 1 shortens (raises pitch / lowers rate), factor < 1 lengthens.
// Factors that are not positive and finite, or so small that the output
// length would exceed maxResampleLen, also yield a copy.
func ResampleLinear(samples []float32, factor float64) []float32 {
	if len(samples) == 0 {
		return []float32{}
	}

	// NaN compares false, so !(q <= max) also catches NaN factors
	q := math.Floor(float64(len(samples)) / factor)
	if factor == 1 || factor <= 0 || math.IsInf(factor, 0) || !(q <= maxResampleLen) {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out
	}

	n := max(int(q), 1)
	last := len(samples) - 1
	out := make([]float32, n)

	for k := range n {
		pos := float64(k) * factor
		i := int(pos)
		if i > last {
			i = last
		}
		frac := float32(pos - float64(i))

		s0 := samples[i]
		s1 := s0
		if i+1 <= last {
			s1 = samples[i+1]
		}
		out[k] = s0 + (s1-s0)*frac
	}

	return out
}

// ResampleRate converts samples recorded at fromRate to toRate.
func ResampleRate(samples []float32, fromRate, toRate uint32) []float32 {
	if fromRate == 0 || toRate == 0 {
		return ResampleLinear(samples, 1)
	}
	return ResampleLinear(samples, float64(fromRate)/float64(toRate))
}

// SemitoneFactor returns the resampling factor that shifts pitch by the
// given number of semitones (2^(s/12)).
func SemitoneFactor(semitones float32) float64 {
	return math.Pow(2, float64(semitones)/12)
}

// PitchShift raises (or lowers, for negative values) the pitch of samples
// by semitones, shortening (or lengthening) the buffer accordingly.
func PitchShift(samples []float32, semitones float32) []float32 {
	return ResampleLinear(samples, SemitoneFactor(semitones))
}
