// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM 16-bit WAV files.
//
// The decoder streams the canonical 44-byte-header layout (RIFF, fmt,
// data) and returns an audio.Source of normalized float32 samples:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Inputs that are not RIFF/WAVE fail with ErrNotWavFile; non-PCM or
// non-16-bit streams fail with ErrOnlyPCM16bitSupported; files with
// extra chunks before data fail with ErrUnsupportedWavChunks.
//
// Encoding goes through the github.com/go-audio/wav encoder:
//
//	err := wav.WritePCM16(file, 200, samples)
//
// WritePCM16 accepts any io.Writer; when the destination cannot seek,
// the file is staged in memory so the encoder can patch its chunk
// sizes before the bytes are flushed.
package wav
