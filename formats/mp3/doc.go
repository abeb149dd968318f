// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 layer 3 streams through
// github.com/hajimehoshi/go-mp3.
//
//	src, err := mp3.Decoder{}.Decode(file)
//
// The returned audio.Source yields interleaved stereo float32 samples
// in [-1, 1]; go-mp3 always produces two channels, so imports normally
// chain a MonoMixer behind the decoder. Decoding only — there is no
// MP3 writer.
package mp3
