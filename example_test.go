// SPDX-License-Identifier: EPL-2.0

package seisio_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tlevang/seisio"
	"github.com/tlevang/seisio/formats/gse2"
	"github.com/tlevang/seisio/formats/wav"
)

// Example_audification renders a waveform trace as a playable WAV
// file, normalized to the trace's peak amplitude.
func Example_audification() {
	hdr := gse2.NewHeader()
	hdr.Station = "RNHA"
	hdr.SamplingRate = 8000
	tr := &gse2.Trace{Header: hdr, Data: []int32{120, -240, 240, 0}}

	var out bytes.Buffer
	if err := seisio.ExportWAV(&out, tr); err != nil {
		log.Fatal(err)
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		log.Fatal(err)
	}
	n := 0
	buf := make([]float32, 16)
	for {
		c, err := src.ReadSamples(buf)
		n += c
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("%d Hz WAV, %d samples\n", src.SampleRate(), n)
	// Output:
	// 8000 Hz WAV, 4 samples
}

// Example_importRecording turns a field recording into a GSE2 file.
func Example_importRecording() {
	f, err := os.Open("recording.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	tr, err := seisio.ImportAudio(src, 100, seisio.DefaultFullScale)
	if err != nil {
		log.Fatal(err)
	}
	tr.Header.Station = "FIELD"
	tr.Header.Channel = "SHZ"

	out, err := os.Create("recording.gse")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := gse2.Write(out, tr); err != nil {
		log.Fatal(err)
	}
}
