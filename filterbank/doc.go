// Package filterbank reads SIGPROC Filterbank (.fil) files.
//
// A Filterbank file starts with a header: a run of keyword/value elements
// bracketed by the HEADER_START and HEADER_END sentinels. The sample data
// matrix follows immediately after HEADER_END and runs to the end of the file.
//
// # Wire Format
//
// All integers are little-endian. Each element is
//
//	[u32 n][n bytes keyword][payload]
//
// where the payload depends on the keyword's [Kind]:
//
//	Kind         | Payload
//	-------------|-----------------------------------------------
//	KindInt32    | 4 bytes, signed
//	KindFloat64  | 8 bytes, IEEE-754 double
//	KindString   | [u32 L][L bytes text]
//	KindAngle    | 8 bytes, double in packed ddmmss.s / hhmmss.s
//
// The sentinels have no payload. A keyword length above 255 is read as 16;
// older writers are known to leave garbage in that field.
//
// Only the 23 keywords listed by [Keywords] are understood. Any other
// keyword stops decoding with [ErrUnknownKeyword], since its payload width
// cannot be known.
//
// # Usage
//
// Decode a header from any byte stream:
//
//	hdr, err := filterbank.DecodeHeader(r)
//	nchans, err := hdr.Int("nchans")
//
// Or open a file to get at the data segment as well:
//
//	f, err := filterbank.Open("voyager.fil")
//	defer f.Close()
//	data, err := f.ReadData()
//
// # Errors
//
//   - [ErrTruncated]: the input ended inside an element
//   - [ErrUnknownKeyword]: a keyword is not in the field schema
//   - [ErrMalformedHeader]: the input does not open with HEADER_START
//   - [ErrInvalidEncoding]: a keyword or string is not valid UTF-8
//
// Decode failures are returned as *[DecodeError], which records the byte
// offset of the failing element and unwraps to one of the errors above.
package filterbank
