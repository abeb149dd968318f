// SPDX-License-Identifier: EPL-2.0

package gse2

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Header holds the fields of a GSE2 WID2 line.
//
// String fields are fixed-width on the wire: Station is at most 5
// characters, Channel 3, AuxID 4, DataType 3 and Instype 6. Longer values
// are truncated by the fixed-column serialization. Npts must fit 8 digits.
type Header struct {
	StartTime    time.Time // microsecond precision
	Station      string
	Channel      string // upper-cased on parse
	AuxID        string
	DataType     string // "CM6" for this codec
	Npts         int
	SamplingRate float64
	Calib        float64
	Calper       float64
	Instype      string
	Hang         float64
	Vang         float64
}

// NewHeader returns a Header pre-filled with the GSE2 write defaults:
// datatype "CM6", calib and calper 1.0, hang and vang -1.
func NewHeader() Header {
	return Header{
		DataType: "CM6",
		Calib:    1.0,
		Calper:   1.0,
		Hang:     -1,
		Vang:     -1,
	}
}

// column returns the byte range [start:stop) of line, tolerating lines
// shorter than the full WID2 layout.
func column(line string, start, stop int) string {
	if start >= len(line) {
		return ""
	}
	if stop > len(line) {
		stop = len(line)
	}
	return line[start:stop]
}

func intField(line string, start, stop int, name string) (int, error) {
	raw := strings.TrimSpace(column(line, start, stop))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &HeaderFieldError{Field: name, Value: raw, Err: err}
	}
	return v, nil
}

func floatField(line string, start, stop int, name string) (float64, error) {
	raw := strings.TrimSpace(column(line, start, stop))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &HeaderFieldError{Field: name, Value: raw, Err: err}
	}
	return v, nil
}

// parseWID2 extracts a Header from a single WID2 line. Fields live at
// fixed byte offsets, they are not delimiter-separated:
//
//	WID2 2009/05/18 06:47:20.255 RNHA  EHN      CM6      750  200.000000
//	0123456789012345678901234567890123456789012345678901234567890123456789
//	0         10        20        30        40        50        60
//	 9.49e-02   1.000    M24  -1.0 -0.0
//	70        80        90        100
func parseWID2(line string) (Header, error) {
	var h Header

	var date struct{ year, month, day, hour, minute, second, usec int }
	for _, f := range []struct {
		dst         *int
		start, stop int
		name        string
	}{
		{&date.year, 5, 9, "year"},
		{&date.month, 10, 12, "month"},
		{&date.day, 13, 15, "day"},
		{&date.hour, 16, 18, "hour"},
		{&date.minute, 19, 21, "minute"},
		{&date.second, 22, 24, "second"},
		{&date.usec, 25, 28, "microsecond"},
	} {
		v, err := intField(line, f.start, f.stop, f.name)
		if err != nil {
			return h, err
		}
		*f.dst = v
	}
	// the fractional field holds milliseconds
	date.usec *= 1000
	h.StartTime = time.Date(date.year, time.Month(date.month), date.day,
		date.hour, date.minute, date.second, date.usec*1000, time.UTC)

	h.Station = strings.TrimSpace(column(line, 29, 34))
	h.Channel = strings.ToUpper(strings.TrimSpace(column(line, 35, 38)))
	h.AuxID = strings.TrimSpace(column(line, 39, 43))
	h.DataType = strings.TrimSpace(column(line, 44, 48))

	var err error
	if h.Npts, err = intField(line, 48, 56, "npts"); err != nil {
		return h, err
	}
	if h.SamplingRate, err = floatField(line, 57, 68, "sampling_rate"); err != nil {
		return h, err
	}
	if h.Calib, err = floatField(line, 69, 79, "calib"); err != nil {
		return h, err
	}
	if h.Calper, err = floatField(line, 80, 87, "calper"); err != nil {
		return h, err
	}
	h.Instype = strings.TrimSpace(column(line, 88, 94))
	if h.Hang, err = floatField(line, 95, 100, "hang"); err != nil {
		return h, err
	}
	if h.Vang, err = floatField(line, 101, 105, "vang"); err != nil {
		return h, err
	}

	return h, nil
}

// normalizeExp rewrites a scientific-notation string so the exponent has
// exactly two digits. Some C runtimes print three-digit exponents
// (9.49e-002); GSE2 readers expect two. The result keeps the original
// field width by re-padding on the left.
func normalizeExp(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 || i+2 > len(s) {
		return s
	}
	mant, exp := s[:i+2], s[i+2:]
	for len(exp) > 2 && exp[0] == '0' {
		exp = exp[1:]
	}
	out := mant + exp
	for len(out) < len(s) {
		out = " " + out
	}
	return out
}

// clip bounds s to the field's column width so an overlong value can
// never shift the columns that follow it.
func clip(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s
}

// formatWID2 renders h into the fixed-column WID2 layout. Calib is
// pre-formatted separately so the exponent width is platform-independent.
func formatWID2(h Header) string {
	calib := normalizeExp(fmt.Sprintf("%10.2e", h.Calib))
	t := h.StartTime
	seconds := float64(t.Second()) + float64(t.Nanosecond())/1e9
	return fmt.Sprintf(
		"WID2 %4d/%02d/%02d %02d:%02d:%06.3f %-5s %-3s %-4s %-3s %8d %11.6f %s %7.3f %-6s %5.1f %4.1f\n",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), seconds,
		clip(h.Station, 5), clip(h.Channel, 3), clip(h.AuxID, 4), clip(h.DataType, 3),
		h.Npts, h.SamplingRate, calib, h.Calper, clip(h.Instype, 6), h.Hang, h.Vang)
}
