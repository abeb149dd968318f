// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream primitives the converters are built
// from: the Source interface, a decoder Registry, sample-rate conversion
// and channel mixdown.
//
// # Source
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Every format decoder in formats/ returns a Source, and the processing
// stages are Sources themselves, so pipelines compose by wrapping:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 200))
//
// # Resampling
//
// Resampler converts between rates by linear interpolation. Seismic
// archival needs timing fidelity rather than audio polish, which the
// simple kernel provides at any ratio.
//
// # Registry
//
// Registry maps file-extension-style keys to decoders so callers can
// pick a decoder by filename:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
package audio
