// SPDX-License-Identifier: EPL-2.0

package utils

// Int16Max is the fixed scale reference between integer PCM and float
// samples. Integer samples of any bit depth are divided by it on decode.
const Int16Max = 32767.0

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for both signs to avoid overflow
	return int16(x * Int16Max)
}

// IntToFloat32 converts an integer PCM sample to float using Int16Max,
// whatever the sample's native bit depth was.
func IntToFloat32(v int) float32 {
	return float32(v) / Int16Max
}
