// SPDX-License-Identifier: EPL-2.0

// Package gse2 reads and writes seismic waveform files in the GSE2
// exchange format with CM6 compression.
//
// A GSE2 file carries one trace as three text records: a fixed-column
// WID2 header line, a DAT2 block of integer samples compressed into a
// 6-bit ASCII alphabet, and a CHK2 trailer holding a modular checksum of
// the raw samples.
//
// # Reading
//
//	f, _ := os.Open("trace.gse")
//	tr, err := gse2.Read(f)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(tr.Header.Station, len(tr.Data))
//
// Read verifies the trailer checksum. To skip verification, or to look
// for a GSE version 1 trailer, use a Decoder:
//
//	tr, err := gse2.Decoder{SkipChecksum: true}.Decode(f)
//
// # Writing
//
//	h := gse2.NewHeader()
//	h.Station, h.Channel = "RNHA", "EHN"
//	h.SamplingRate = 200
//	h.StartTime = time.Now().UTC()
//	err := gse2.Write(f, &gse2.Trace{Header: h, Data: samples})
//
// Samples are second-differenced before compression; any magnitude above
// 2^26 cannot be represented and makes Write fail with ErrSampleOverflow
// before anything reaches the output.
//
// # Compression
//
// CM6 encodes each second-differenced sample as one to six characters
// from a 64-symbol alphabet, packed most-significant group first with a
// continuation bit, and frames the stream into 80-character lines.
// Decoding pulls lines lazily and stops after the header's sample count,
// so memory use stays bounded regardless of trace length.
//
// # Checksums
//
// The trailer checksum is a modular signed sum over the raw samples.
// Some historical writers stored it with the wrong sign; a stored value
// matching in magnitude but not in sign is accepted with a logged
// warning instead of an error, since archival data depends on the
// lenient compare. A genuine mismatch fails with *ChecksumError.
//
// # Errors
//
// The package reports failures through sentinel errors (ErrNotGSE2,
// ErrNoHeader, ErrTruncatedData, ErrLengthMismatch, ErrSampleOverflow)
// and the typed *HeaderFieldError and *ChecksumError. Parsing and codec
// errors terminate the call immediately; there is no partial-result
// recovery.
//
// Only CM6 single-trace files are supported. Data are circular-frequency
// counts; for ground motion multiply by 2*pi*calper and calib.
package gse2
