// SPDX-License-Identifier: EPL-2.0

// Package utils holds small scalar conversion helpers shared by the
// import and export pipelines.
package utils

// MaxCount is the largest sample magnitude the GSE2 CM6 encoding can
// carry; Float32ToCount never exceeds it.
const MaxCount = 1 << 26

// Float32ToInt16 converts a [-1, 1] sample to 16-bit PCM, clamping
// out-of-range input. The symmetric scale 32767 avoids overflow at -1.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * 32767.0)
}

// Float32ToCount scales a [-1, 1] sample to an integer count at the
// given full-scale magnitude, clamping both the input range and the
// CM6 ceiling.
func Float32ToCount(x float32, fullScale int32) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	if fullScale > MaxCount {
		fullScale = MaxCount
	}
	return int32(float64(x) * float64(fullScale))
}
