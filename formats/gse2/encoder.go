// SPDX-License-Identifier: EPL-2.0

package gse2

import (
	"fmt"
	"io"
)

// maxSample is the largest magnitude the CM6 second-difference encoding
// carries safely; larger values corrupt on the wire.
const maxSample = 1 << 26

// Encoder writes a trace as a CM6-compressed GSE2 file.
type Encoder struct {
	// InPlace differences the caller's sample buffer directly instead of
	// a private copy, saving one allocation but leaving the buffer
	// unusable afterwards.
	InPlace bool
}

// Encode writes the WID2 header, the DAT2 block framed in 80-character
// lines and the CHK2 trailer. The checksum is computed over the raw
// samples before differencing. Encode refuses buffers holding any sample
// with magnitude above 2^26 and in that case writes nothing at all.
//
// Header fields left at their zero value fall back to the GSE2 defaults
// where a zero is meaningless: datatype "CM6", calib 1.0, calper 1.0.
// Npts is always taken from the sample count.
func (e Encoder) Encode(w io.Writer, tr *Trace) error {
	data := tr.Data
	chk := checksum(data)

	if !e.InPlace {
		data = append([]int32(nil), data...)
	}
	for _, v := range data {
		if v > maxSample || v < -maxSample {
			return ErrSampleOverflow
		}
	}

	applySecondDiff(data)
	stream := cm6Encode(data)

	header := tr.Header
	if header.DataType == "" {
		header.DataType = "CM6"
	}
	if header.Calib == 0 {
		header.Calib = 1.0
	}
	if header.Calper == 0 {
		header.Calper = 1.0
	}
	header.Npts = len(tr.Data)

	if _, err := io.WriteString(w, formatWID2(header)); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := io.WriteString(w, "DAT2\n"); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := frameCM6(w, stream); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "CHK2 %8d\n\n", chk); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Write encodes a trace with the default Encoder settings, leaving the
// caller's buffer untouched.
func Write(w io.Writer, tr *Trace) error {
	return Encoder{}.Encode(w, tr)
}
