// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"full positive", 1.0, 32767},
		{"full negative", -1.0, -32767},
		{"half", 0.5, 16383},
		{"clamped above", 1.5, 32767},
		{"clamped below", -2.0, -32767},
	}
	for _, tt := range tests {
		if got := Float32ToInt16(tt.input); got != tt.want {
			t.Errorf("%s: Float32ToInt16(%v) = %d, want %d", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestFloat32ToCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     float32
		fullScale int32
		want      int32
	}{
		{"zero", 0, 1000, 0},
		{"full scale", 1, 1000, 1000},
		{"negative full scale", -1, 1000, -1000},
		{"half", 0.5, 1000, 500},
		{"clamped input", 2.0, 1000, 1000},
		{"full scale capped at CM6 ceiling", 1, 1 << 30, MaxCount},
	}
	for _, tt := range tests {
		if got := Float32ToCount(tt.input, tt.fullScale); got != tt.want {
			t.Errorf("%s: Float32ToCount(%v, %d) = %d, want %d",
				tt.name, tt.input, tt.fullScale, got, tt.want)
		}
	}
}
