// SPDX-License-Identifier: EPL-2.0

package seisio

import (
	"fmt"
	"io"

	"github.com/tlevang/seisio/audio"
	"github.com/tlevang/seisio/formats/gse2"
	"github.com/tlevang/seisio/formats/wav"
	"github.com/tlevang/seisio/utils"
)

// DefaultFullScale is the count magnitude a full-scale audio sample
// maps to on import. It leaves ample headroom below the CM6 sample
// limit.
const DefaultFullScale int32 = 1 << 23

const importBufSize = 4096

// ImportAudio resamples src to targetRate, mixes it to mono and scales
// the samples to integer counts, returning a trace ready for
// gse2.Write. fullScale is the count value a full-scale (+/-1.0)
// sample maps to; 0 means DefaultFullScale. The returned header
// carries the write defaults plus the sampling rate and sample count;
// station and channel are left for the caller.
func ImportAudio(src audio.Source, targetRate int, fullScale int32) (*gse2.Trace, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("invalid target rate %d", targetRate)
	}
	if fullScale == 0 {
		fullScale = DefaultFullScale
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	data := make([]int32, 0, targetRate)
	buf := make([]float32, importBufSize)
	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			data = append(data, utils.Float32ToCount(x, fullScale))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	hdr := gse2.NewHeader()
	hdr.SamplingRate = float64(targetRate)
	hdr.Npts = len(data)
	return &gse2.Trace{Header: hdr, Data: data}, nil
}

// ExportWAV writes tr as a mono 16-bit PCM WAV file at the trace's
// sampling rate, normalized so the peak count hits full scale.
func ExportWAV(w io.Writer, tr *gse2.Trace) error {
	rate := int(tr.Header.SamplingRate)
	if rate <= 0 {
		return fmt.Errorf("invalid sampling rate %g", tr.Header.SamplingRate)
	}

	src := tr.Source()
	pcm := make([]int16, 0, len(tr.Data))
	buf := make([]float32, importBufSize)
	for {
		n, err := src.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(x))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading trace: %w", err)
		}
	}

	return wav.WritePCM16(w, rate, pcm)
}
