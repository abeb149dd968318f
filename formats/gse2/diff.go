// SPDX-License-Identifier: EPL-2.0

package gse2

// applySecondDiff replaces data in place with its second-order forward
// difference: two passes of first differencing, each keeping element 0 as
// the seed needed to invert the transform exactly.
func applySecondDiff(data []int32) {
	for pass := 0; pass < 2; pass++ {
		for i := len(data) - 1; i > 0; i-- {
			data[i] -= data[i-1]
		}
	}
}

// removeSecondDiff is the exact inverse of applySecondDiff: two passes of
// prefix summation.
func removeSecondDiff(data []int32) {
	for pass := 0; pass < 2; pass++ {
		for i := 1; i < len(data); i++ {
			data[i] += data[i-1]
		}
	}
}
