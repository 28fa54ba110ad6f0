package filterbank

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrTruncated       = errors.New("truncated stream")
	ErrUnknownKeyword  = errors.New("unknown keyword")
	ErrMalformedHeader = errors.New("malformed header")
	ErrInvalidEncoding = errors.New("invalid text encoding")
	ErrMissingKeyword  = errors.New("keyword not present")
	ErrWrongKind       = errors.New("value has a different kind")
	ErrInvalidShape    = errors.New("data size does not match header")
	ErrClosed          = errors.New("file is closed")
)

// DecodeError reports where and why header decoding stopped.
type DecodeError struct {
	Offset  int64  // offset of the element being decoded
	Keyword string // keyword of the element, if it was read
	Op      string // what was being read
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("filterbank: element %q at offset %d: %s: %v", e.Keyword, e.Offset, e.Op, e.Err)
	}
	return fmt.Sprintf("filterbank: element at offset %d: %s: %v", e.Offset, e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
