// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/tlevang/seisio/internal/audiotest"
)

func drain(t *testing.T, src Source) []float32 {
	t.Helper()
	var out []float32
	buf := make([]float32, 256)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Downsample(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(200, 1, 200, 0.5) // 1 second at 200 Hz
	res := NewResampler(src, 50)

	if res.SampleRate() != 50 {
		t.Errorf("SampleRate() = %d, want 50", res.SampleRate())
	}

	out := drain(t, res)
	if len(out) < 45 || len(out) > 55 {
		t.Errorf("got %d samples, want about 50", len(out))
	}
	for i, v := range out {
		if v != 0.5 {
			t.Fatalf("out[%d] = %v, want 0.5 for constant input", i, v)
		}
	}
}

func TestResampler_Upsample(t *testing.T) {
	t.Parallel()

	// ramp 0,1,2,...  upsampled 2x must interpolate midpoints
	src := audiotest.NewMockSource(100, 1, 100, func(sample, channel int) float32 {
		return float32(sample) / 100
	})
	out := drain(t, NewResampler(src, 200))

	if len(out) < 190 {
		t.Fatalf("got %d samples, want about 198", len(out))
	}
	// out[1] lies halfway between source samples 0 and 1
	want := float32(0.5) / 100
	if diff := out[1] - want; diff < -1e-4 || diff > 1e-4 {
		t.Errorf("out[1] = %v, want %v", out[1], want)
	}
}

func TestResampler_SameRatePassesValuesThrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(100, 1, 10, func(sample, channel int) float32 {
		return float32(sample)
	})
	out := drain(t, NewResampler(src, 100))

	for i, v := range out {
		if v != float32(i) {
			t.Fatalf("out[%d] = %v, want %v", i, v, float32(i))
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(100, 2, 10)
	res := NewResampler(src, 100)
	if _, err := res.ReadSamples(make([]float32, 3)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(100, 1, 0)
	res := NewResampler(src, 50)
	if _, err := res.ReadSamples(make([]float32, 10)); err != io.EOF {
		t.Errorf("ReadSamples() on empty source error = %v, want io.EOF", err)
	}
}
