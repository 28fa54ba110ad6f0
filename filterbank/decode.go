package filterbank

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/robert-malhotra/go-sigproc/internal/binary"
	"github.com/robert-malhotra/go-sigproc/internal/sexagesimal"
)

// Keyword lengths above maxKeywordLen are read as clampedKeywordLen bytes.
const (
	maxKeywordLen     = 255
	clampedKeywordLen = 16
)

// Decoder reads header elements from a byte stream. It consumes exactly the
// bytes of the elements it decodes, so after Decode the underlying reader is
// positioned at the first byte of the data segment.
//
// A Decoder must not be shared between goroutines.
type Decoder struct {
	r    *binary.Reader
	opts *options
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Decoder{
		r:    binary.NewReader(r, binary.DefaultConfig()),
		opts: o,
	}
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.r.Pos()
}

// ReadElement decodes the next keyword and its payload. Sentinel elements are
// returned with a zero Value.
func (d *Decoder) ReadElement() (Element, error) {
	start := d.r.Pos()

	n, err := d.r.ReadUint32()
	if err != nil {
		return Element{}, decodeErr(start, "", "keyword length", err)
	}
	if n > maxKeywordLen {
		n = clampedKeywordLen
	}

	raw, err := d.r.ReadBytes(int(n))
	if err != nil {
		return Element{}, decodeErr(start, "", "keyword", err)
	}
	if !utf8.Valid(raw) {
		return Element{}, &DecodeError{
			Offset: start,
			Op:     "keyword",
			Err:    fmt.Errorf("%w: %q", ErrInvalidEncoding, raw),
		}
	}
	keyword := string(raw)

	if isSentinel(keyword) {
		return Element{Keyword: keyword}, nil
	}

	kind, ok := schema[keyword]
	if !ok {
		return Element{}, &DecodeError{Offset: start, Keyword: keyword, Op: "schema lookup", Err: ErrUnknownKeyword}
	}

	v, err := d.readValue(kind)
	if err != nil {
		return Element{}, decodeErr(start, keyword, kind.String()+" payload", err)
	}
	return Element{Keyword: keyword, Value: v}, nil
}

func (d *Decoder) readValue(kind Kind) (Value, error) {
	switch kind {
	case KindInt32:
		i, err := d.r.ReadInt32()
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil

	case KindFloat64:
		f, err := d.r.ReadFloat64()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil

	case KindString:
		n, err := d.r.ReadUint32()
		if err != nil {
			return Value{}, err
		}
		raw, err := d.r.ReadBytes(int(n))
		if err != nil {
			return Value{}, err
		}
		if !utf8.Valid(raw) {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidEncoding, raw)
		}
		return StringValue(string(raw)), nil

	case KindAngle:
		f, err := d.r.ReadFloat64()
		if err != nil {
			return Value{}, err
		}
		return AngleValue(sexagesimal.ToDecimal(f)), nil

	case KindNone:
	}
	panic("filterbank: no payload reader for kind " + kind.String())
}

// Decode reads a complete header, from HEADER_START through HEADER_END.
// No header is returned if any element fails to decode.
func (d *Decoder) Decode() (*Header, error) {
	start := d.r.Pos()
	first, err := d.ReadElement()
	if err != nil {
		return nil, err
	}
	if first.Keyword != HeaderStart {
		return nil, &DecodeError{
			Offset:  start,
			Keyword: first.Keyword,
			Op:      "start sentinel",
			Err:     fmt.Errorf("%w: expected %s, got %q", ErrMalformedHeader, HeaderStart, first.Keyword),
		}
	}

	log := d.opts.logger
	hdr := newHeader()
	for {
		offset := d.r.Pos()
		el, err := d.ReadElement()
		if err != nil {
			return nil, err
		}
		if el.Keyword == HeaderEnd {
			break
		}
		if el.Keyword == HeaderStart {
			continue
		}
		if hdr.set(el.Keyword, el.Value) && log != nil {
			log.Warn("repeated keyword replaces earlier value", "keyword", el.Keyword, "offset", offset)
		}
		if log != nil {
			log.Debug("header element", "keyword", el.Keyword, "kind", el.Value.Kind(), "value", el.Value, "offset", offset)
		}
	}
	hdr.dataOffset = d.r.Pos()
	if log != nil {
		log.Debug("header decoded", "keywords", hdr.Len(), "elements", hdr.ElementCount(), "data_offset", hdr.dataOffset)
	}
	return hdr, nil
}

// DecodeHeader reads a header from r. On success r is positioned at the
// start of the data segment.
func DecodeHeader(r io.Reader, opts ...Option) (*Header, error) {
	return NewDecoder(r, opts...).Decode()
}

// ReadHeader decodes the header at the start of data.
func ReadHeader(data []byte, opts ...Option) (*Header, error) {
	return DecodeHeader(bytes.NewReader(data), opts...)
}

func decodeErr(offset int64, keyword, op string, err error) error {
	if errors.Is(err, binary.ErrShortRead) {
		err = fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return &DecodeError{Offset: offset, Keyword: keyword, Op: op, Err: err}
}
