// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM 16-bit AIFF files through
// github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// The underlying decoder needs random access; inputs that cannot seek
// are buffered in memory first. Decoding only, 16-bit PCM only.
package aiff
