// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WritePCM16 writes mono 16-bit PCM samples as a WAV file through the
// go-audio encoder. The encoder needs to seek back to patch the chunk
// sizes; plain writers are staged through an in-memory seeker first.
func WritePCM16(w io.Writer, sampleRate int, samples []int16) error {
	if ws, ok := w.(io.WriteSeeker); ok {
		return encodePCM16(ws, sampleRate, samples)
	}

	mem := &memWriteSeeker{}
	if err := encodePCM16(mem, sampleRate, samples); err != nil {
		return err
	}
	if _, err := w.Write(mem.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func encodePCM16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           data,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// memWriteSeeker is an in-memory io.WriteSeeker for encoders that must
// rewind over what they wrote.
type memWriteSeeker struct {
	buf []byte
	pos int
}

func (m *memWriteSeeker) Write(p []byte) (int, error) {
	if need := m.pos + len(p); need > len(m.buf) {
		grown := make([]byte, need)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:], p)
	m.pos += len(p)
	return len(p), nil
}

func (m *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(m.pos) + offset
	case io.SeekEnd:
		pos = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative position")
	}
	m.pos = int(pos)
	return pos, nil
}
