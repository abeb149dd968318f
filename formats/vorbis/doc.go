// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// The returned audio.Source yields interleaved float32 samples already
// normalized to [-1, 1]. Decoding only.
package vorbis
