package gse2

import (
	"errors"
	"fmt"
)

var (
	// ErrNotGSE2 reports that the stream does not begin with a WID2 record.
	ErrNotGSE2 = errors.New("not a GSE2 file")
	// ErrNoHeader reports that the input ended before a WID2 line was found.
	ErrNoHeader = errors.New("no WID2 header line found")
	// ErrTruncatedData reports that the data section ended before npts
	// samples could be decoded.
	ErrTruncatedData = errors.New("data section truncated before all samples were decoded")
	// ErrLengthMismatch reports that the CM6 unpacker produced a sample
	// count different from the one requested.
	ErrLengthMismatch = errors.New("decoded sample count does not match header npts")
	// ErrSampleOverflow reports a sample magnitude above 2^26, which the
	// CM6 second-difference encoding cannot represent safely.
	ErrSampleOverflow = errors.New("sample magnitude exceeds 2^26, cannot encode as CM6")
)

// HeaderFieldError reports a WID2 header field that failed numeric
// conversion during the fixed-column parse.
type HeaderFieldError struct {
	Field string
	Value string
	Err   error
}

func (e *HeaderFieldError) Error() string {
	return fmt.Sprintf("gse2: bad WID2 field %s: %q", e.Field, e.Value)
}

func (e *HeaderFieldError) Unwrap() error { return e.Err }

// ChecksumError reports a mismatch between the checksum computed from the
// decoded samples and the value stored on the CHK line.
type ChecksumError struct {
	Computed int32
	Stored   int32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("gse2: mismatching checksums, CHK %d != CHK %d", e.Computed, e.Stored)
}
