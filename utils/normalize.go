// SPDX-License-Identifier: EPL-2.0

package utils

import "github.com/viterin/vek/vek32"

// Peak returns the largest absolute sample value, 0 for empty input.
func Peak(samples []float32) float32 {
	if len(samples) == 0 {
		return 0
	}

	abs := make([]float32, len(samples))
	copy(abs, samples)
	vek32.Abs_Inplace(abs)

	return vek32.Max(abs)
}

// Normalize returns a copy of samples scaled so that its peak absolute value
// equals peak. Silent input (peak 0) is returned unscaled.
func Normalize(samples []float32, peak float32) []float32 {
	out := make([]float32, len(samples))

	m := Peak(samples)
	if m <= 0 {
		copy(out, samples)
		return out
	}

	return vek32.MulNumber_Into(out, samples, peak/m)
}

// Mix adds src into dst position-wise. src may be shorter than dst; any part
// of src past len(dst) is ignored.
func Mix(dst, src []float32) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}
	vek32.Add_Inplace(dst[:n], src[:n])
}
