// SPDX-License-Identifier: EPL-2.0

// Package seisio reads and writes GSE2 seismic waveform files and
// bridges them to ordinary audio processing.
//
// # GSE2 files
//
// The formats/gse2 package holds the codec itself: the WID2 header,
// CM6 6-bit sample compression and the CHK2 checksum.
//
//	tr, err := gse2.Read(file)
//	...
//	err = gse2.Write(out, tr)
//
// # Importing audio
//
// Field recordings often arrive as WAV, AIFF, MP3 or Ogg Vorbis files.
// Each format has a decoder under formats/ returning an audio.Source,
// and ImportAudio turns any Source into a GSE2 trace:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	tr, _ := seisio.ImportAudio(src, 100, seisio.DefaultFullScale)
//	tr.Header.Station = "RNHA"
//	gse2.Write(out, tr)
//
// # Exporting audio
//
// ExportWAV renders a trace as a mono 16-bit PCM WAV file, normalized
// to the trace's peak amplitude, for listening to waveforms
// (audification):
//
//	seisio.ExportWAV(out, tr)
//
// For custom pipelines use the audio subpackage directly: Trace.Source
// exposes a trace as an audio.Source, and NewResampler and NewMonoMixer
// compose the same way as for any other source.
package seisio
