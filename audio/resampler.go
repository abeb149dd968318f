// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Resampler converts src to a target sample rate by linear interpolation
// between neighbouring frames. Channel count is preserved. Waveform
// archival cares about timing fidelity, not audio polish, so the simple
// kernel is deliberate.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	prev, next []float32 // the two frames interpolation runs between
	primed     bool
	eof        bool
	pos        float64 // position between prev (0) and next (1)

	frameBuf []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	return &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		prev:     make([]float32, channels),
		next:     make([]float32, channels),
		frameBuf: make([]float32, channels),
	}
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame fills dst with one full source frame, tolerating short reads.
func (r *Resampler) readFrame(dst []float32) error {
	got := 0
	for got < r.channels {
		n, err := r.src.ReadSamples(dst[got:r.channels])
		got += n
		if n == 0 && err == nil {
			// stalled source, treat as end of stream
			return io.EOF
		}
		if err != nil {
			if err == io.EOF && got == r.channels {
				r.eof = true
				return nil
			}
			if err != io.EOF {
				return fmt.Errorf("%w", err)
			}
			return io.EOF
		}
	}
	return nil
}

// advance shifts next into prev and reads the following source frame.
func (r *Resampler) advance() error {
	r.prev, r.next = r.next, r.prev
	if r.eof {
		return io.EOF
	}
	if err := r.readFrame(r.next); err != nil {
		return err
	}
	return nil
}

// ReadSamples produces samples at the target rate. dst length must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.readFrame(r.prev); err != nil {
			return 0, err
		}
		if err := r.readFrame(r.next); err != nil {
			if err != io.EOF {
				return 0, err
			}
			copy(r.next, r.prev)
			r.eof = true
		}
		r.primed = true
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		t := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			dst[written*r.channels+c] = r.prev[c] + (r.next[c]-r.prev[c])*t
		}
		written++
		r.pos += r.step
	}
	return written * r.channels, nil
}
