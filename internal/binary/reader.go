// Package binary provides the byte cursor used for Filterbank header parsing.
package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrShortRead is returned when the source ends before a read is satisfied.
var ErrShortRead = errors.New("short read")

// maxEagerRead is the largest read served from a single up-front allocation.
// Larger reads grow their buffer as bytes arrive.
const maxEagerRead = 64 << 10

// ShortReadError describes a read that ran past the end of the source.
type ShortReadError struct {
	Offset int64 // position at which the read started
	Want   int   // bytes requested
	Have   int   // bytes available before the source ended
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read at offset %d: want %d bytes, have %d", e.Offset, e.Want, e.Have)
}

func (e *ShortReadError) Unwrap() error {
	return ErrShortRead
}

// Reader reads fixed-width values from a sequential byte source and tracks
// how many bytes have been consumed. The position only moves forward.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	pos   int64
}

// Config holds reader configuration.
type Config struct {
	ByteOrder binary.ByteOrder
}

// DefaultConfig returns the configuration for SIGPROC headers, which are
// always little-endian.
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.LittleEndian,
	}
}

// NewReader creates a binary reader with the given configuration.
func NewReader(r io.Reader, cfg Config) *Reader {
	order := cfg.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{
		r:     r,
		order: order,
	}
}

// NewBytesReader creates a little-endian reader over an in-memory buffer.
func NewBytesReader(data []byte) *Reader {
	return NewReader(bytes.NewReader(data), DefaultConfig())
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int64 {
	return r.pos
}

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// ReadBytes reads exactly n bytes from the current position.
// On a short read the position still advances past whatever was consumed,
// and the returned error is a *ShortReadError.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	start := r.pos

	if n <= maxEagerRead {
		buf := make([]byte, n)
		got, err := io.ReadFull(r.r, buf)
		r.pos += int64(got)
		if err != nil {
			return nil, r.wrap(err, start, n, got)
		}
		return buf, nil
	}

	var buf bytes.Buffer
	got, err := io.CopyN(&buf, r.r, int64(n))
	r.pos += got
	if err != nil {
		return nil, r.wrap(err, start, n, int(got))
	}
	return buf.Bytes(), nil
}

func (r *Reader) wrap(err error, start int64, want, have int) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ShortReadError{Offset: start, Want: want, Have: have}
	}
	return fmt.Errorf("reading %d bytes at offset %d: %w", want, start, err)
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(buf), nil
}

// ReadFloat64 reads an IEEE-754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
