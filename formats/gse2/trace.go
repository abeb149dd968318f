// SPDX-License-Identifier: EPL-2.0

package gse2

import (
	"io"

	"github.com/tlevang/seisio/audio"
)

// Trace is a single decoded GSE2 waveform: the WID2 header and the raw
// samples in circular-frequency counts. For physical amplitudes multiply
// by 2*pi*calper and calib.
type Trace struct {
	Header Header
	Data   []int32
}

// Source exposes the trace as a mono audio.Source with samples normalized
// by the peak magnitude, for feeding the counts into the audio pipeline
// (audification, resampling, WAV export).
func (tr *Trace) Source() audio.Source {
	var peak int32 = 1
	for _, v := range tr.Data {
		if v > peak {
			peak = v
		} else if -v > peak {
			peak = -v
		}
	}
	return &traceSource{tr: tr, peak: float32(peak)}
}

type traceSource struct {
	tr   *Trace
	pos  int
	peak float32
}

func (s *traceSource) SampleRate() int { return int(s.tr.Header.SamplingRate) }
func (s *traceSource) Channels() int   { return 1 }
func (s *traceSource) Close() error    { return nil }

func (s *traceSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.tr.Data) {
		return 0, io.EOF
	}
	m := len(s.tr.Data) - s.pos
	if m > len(dst) {
		m = len(dst)
	}
	for i := 0; i < m; i++ {
		dst[i] = float32(s.tr.Data[s.pos+i]) / s.peak
	}
	s.pos += m
	return m, nil
}
