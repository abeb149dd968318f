// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/tlevang/seisio/audio"
)

// sampleReader is the slice of oggvorbis.Reader the source needs; tests
// substitute their own.
type sampleReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source adapts the oggvorbis reader, which already yields interleaved
// normalized float32 samples in whole frames.
type source struct {
	dec        sampleReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// the reader only fills whole frames
	want := len(dst) / s.channels * s.channels
	n, err := s.dec.Read(dst[:want])
	if n == 0 && err == nil {
		err = io.EOF
	}
	return n, err
}

// Decoder reads Ogg Vorbis streams via github.com/jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
