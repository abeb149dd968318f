// SPDX-License-Identifier: EPL-2.0

package gse2

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decoder reads a single CM6-compressed GSE2 trace from a stream.
// The zero value verifies the trailer checksum against GSE version 2.
type Decoder struct {
	// SkipChecksum disables verification of the CHK trailer.
	SkipChecksum bool
	// Version selects the CHK token to look for; 0 means 2.
	Version int
}

// readerLines adapts a bufio.Reader into the forward-only line source the
// codec pulls from. The stream position only ever advances.
type readerLines struct {
	br *bufio.Reader
}

func (l *readerLines) nextLine() ([]byte, error) {
	line, err := l.br.ReadBytes('\n')
	if len(line) > 0 {
		return line, nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

// readHeader scans forward for the next WID2 line and parses it.
func readHeader(lines lineSource) (Header, error) {
	for {
		line, err := lines.nextLine()
		if err == io.EOF {
			return Header{}, ErrNoHeader
		}
		if err != nil {
			return Header{}, fmt.Errorf("%w", err)
		}
		if bytes.HasPrefix(line, []byte("WID2")) {
			return parseWID2(string(bytes.TrimRight(line, "\r\n")))
		}
	}
}

// skipToData consumes lines up to and including the DAT2 marker.
func skipToData(lines lineSource) error {
	for {
		line, err := lines.nextLine()
		if err == io.EOF {
			return ErrTruncatedData
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if bytes.HasPrefix(line, []byte("DAT2")) {
			return nil
		}
	}
}

// Decode reads one GSE2 trace: WID2 header, CM6 data block, CHK trailer.
//
// The stream must start with the four bytes "WID2" or ErrNotGSE2 is
// returned. Data lines are pulled one at a time, so arbitrarily long
// traces decode with bounded working memory. When the header announces
// zero samples the data block machinery is bypassed entirely.
func (d Decoder) Decode(r io.Reader) (*Trace, error) {
	br := bufio.NewReader(r)
	sniff, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w", err)
	}
	if !bytes.Equal(sniff, []byte("WID2")) {
		return nil, ErrNotGSE2
	}

	lines := &readerLines{br: br}
	header, err := readHeader(lines)
	if err != nil {
		return nil, err
	}

	data := []int32{}
	if header.Npts > 0 {
		if err := skipToData(lines); err != nil {
			return nil, err
		}
		dec := &cm6Decoder{lines: lines}
		var n int
		data, n, err = dec.decode(header.Npts)
		if err != nil {
			return nil, err
		}
		if n != header.Npts {
			return nil, ErrLengthMismatch
		}
		removeSecondDiff(data)
	}

	if !d.SkipChecksum {
		version := d.Version
		if version == 0 {
			version = 2
		}
		if err := verifyChecksum(lines, data, version); err != nil {
			return nil, err
		}
	}

	return &Trace{Header: header, Data: data}, nil
}

// Read decodes a trace with the default Decoder settings, checksum
// verification included.
func Read(r io.Reader) (*Trace, error) {
	return Decoder{}.Decode(r)
}
