// SPDX-License-Identifier: EPL-2.0

package gse2

import (
	"fmt"
	"io"
)

// cm6Alphabet maps each 6-bit value to its CM6 character. Within a 6-bit
// group, bit 32 marks that another group of the same sample follows; in
// the first group of a sample bit 16 is the sign and the low 4 bits carry
// data, in every later group the low 5 bits carry data.
const cm6Alphabet = "+-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	cm6Continue = 0x20
	cm6Sign     = 0x10

	// lineWidth is the fixed GSE2 data record width.
	lineWidth = 80
	// scratchSize bounds the decoder's per-line working buffer: up to 80
	// data characters plus terminator, clipped to 82 usable bytes so a
	// trailing NUL still fits.
	scratchSize = 83
	clipSize    = 82
)

// cm6Value is the reverse alphabet; -1 marks bytes outside the character set.
var cm6Value [256]int8

func init() {
	for i := range cm6Value {
		cm6Value[i] = -1
	}
	for i := 0; i < len(cm6Alphabet); i++ {
		cm6Value[cm6Alphabet[i]] = int8(i)
	}
}

// cm6Encode packs the differenced samples into the CM6 byte stream,
// unframed. Each sample takes between one and six characters depending on
// its magnitude. Apart from the guard below the encoding is total: every
// int32 the write path can produce after the 2^26 magnitude check fits in
// six groups (4 + 5*5 = 29 magnitude bits).
func cm6Encode(diffed []int32) []byte {
	out := make([]byte, 0, len(diffed)*4)
	for _, v := range diffed {
		var sign byte
		m := uint32(v)
		if v < 0 {
			sign = cm6Sign
			m = uint32(-int64(v))
		}

		// number of 6-bit groups: the first holds 4 bits, each further
		// group another 5
		groups := 1
		for limit := uint32(1 << 4); m >= limit && groups < 7; groups++ {
			limit <<= 5
		}

		first := byte(m>>(5*(groups-1))&0x0F) | sign
		if groups > 1 {
			first |= cm6Continue
		}
		out = append(out, cm6Alphabet[first])
		for i := groups - 2; i >= 0; i-- {
			g := byte(m >> (5 * i) & 0x1F)
			if i > 0 {
				g |= cm6Continue
			}
			out = append(out, cm6Alphabet[g])
		}
	}
	return out
}

// frameCM6 chunks the encoded stream into lines of exactly 80 characters,
// the final partial line space-padded to the boundary. A zero-length
// stream produces no lines.
func frameCM6(w io.Writer, stream []byte) error {
	line := make([]byte, lineWidth+1)
	line[lineWidth] = '\n'
	for off := 0; off < len(stream); off += lineWidth {
		n := copy(line[:lineWidth], stream[off:])
		for i := n; i < lineWidth; i++ {
			line[i] = ' '
		}
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// lineSource feeds the decoder one raw text line at a time, io.EOF when
// the input is exhausted. The decoder never reads ahead of the line it is
// currently consuming.
type lineSource interface {
	nextLine() ([]byte, error)
}

// cm6Decoder unpacks CM6 characters pulled lazily from a line source.
// All working state is local to the decoder instance, so concurrent
// decode calls on separate instances never interfere.
type cm6Decoder struct {
	lines lineSource
	buf   [scratchSize]byte
	pos   int
	n     int
}

// nextValue returns the 6-bit value of the next alphabet character,
// pulling further lines as the scratch buffer drains. A byte outside the
// alphabet ends the payload of its line. Returns io.EOF when the line
// source is exhausted.
func (d *cm6Decoder) nextValue() (int8, error) {
	for {
		if d.pos < d.n {
			v := cm6Value[d.buf[d.pos]]
			if v >= 0 {
				d.pos++
				return v, nil
			}
			// padding, CR or stray byte: the rest of this line is not data
			d.pos = d.n
			continue
		}
		line, err := d.lines.nextLine()
		if err != nil {
			return 0, err
		}
		if len(line) > clipSize {
			line = line[:clipSize]
		}
		d.n = copy(d.buf[:], line)
		d.pos = 0
	}
}

// decode recovers up to npts second-differenced samples. Samples may
// span line boundaries; decoding stops as soon as npts values have been
// produced, leaving any padding unread. The sample count is tracked
// separately from the buffer and reported alongside it, as the
// reference unpack routine does, so the caller can compare it against
// the count the header promised.
func (d *cm6Decoder) decode(npts int) ([]int32, int, error) {
	out := make([]int32, npts)
	n := 0
	for n < npts {
		v, err := d.nextValue()
		if err == io.EOF {
			return out[:n], n, ErrTruncatedData
		}
		if err != nil {
			return out[:n], n, err
		}
		negative := v&cm6Sign != 0
		acc := int32(v & 0x0F)
		for v&cm6Continue != 0 {
			if v, err = d.nextValue(); err != nil {
				if err == io.EOF {
					err = ErrTruncatedData
				}
				return out[:n], n, err
			}
			acc = acc<<5 | int32(v&0x1F)
		}
		if negative {
			acc = -acc
		}
		out[n] = acc
		n++
	}
	return out[:n], n, nil
}
