package filterbank

import (
	"fmt"
	"slices"
)

// Header is a decoded Filterbank header. It is read-only once returned by
// the decoder.
//
// Keywords iterate in the order they first appeared in the stream. If a
// keyword appears more than once, the last value wins.
type Header struct {
	keys       []string
	values     map[string]Value
	count      int
	dataOffset int64
}

func newHeader() *Header {
	return &Header{values: make(map[string]Value)}
}

// set records an element and reports whether it replaced an earlier value.
func (h *Header) set(keyword string, v Value) bool {
	h.count++
	_, dup := h.values[keyword]
	if !dup {
		h.keys = append(h.keys, keyword)
	}
	h.values[keyword] = v
	return dup
}

// Len returns the number of distinct keywords.
func (h *Header) Len() int {
	return len(h.keys)
}

// ElementCount returns the number of field elements decoded, counting
// repeated keywords each time.
func (h *Header) ElementCount() int {
	return h.count
}

// DataOffset returns the byte offset just past HEADER_END, where the data
// segment begins.
func (h *Header) DataOffset() int64 {
	return h.dataOffset
}

// Keys returns the keywords in stream order.
func (h *Header) Keys() []string {
	return slices.Clone(h.keys)
}

// Elements returns the keyword/value pairs in stream order.
func (h *Header) Elements() []Element {
	out := make([]Element, len(h.keys))
	for i, k := range h.keys {
		out[i] = Element{Keyword: k, Value: h.values[k]}
	}
	return out
}

// Get returns the value for keyword.
func (h *Header) Get(keyword string) (Value, bool) {
	v, ok := h.values[keyword]
	return v, ok
}

// Has reports whether keyword is present.
func (h *Header) Has(keyword string) bool {
	_, ok := h.values[keyword]
	return ok
}

// Int returns the value of an integer keyword.
func (h *Header) Int(keyword string) (int32, error) {
	v, err := h.lookup(keyword)
	if err != nil {
		return 0, err
	}
	i, ok := v.Int()
	if !ok {
		return 0, fmt.Errorf("%s is %s: %w", keyword, v.Kind(), ErrWrongKind)
	}
	return i, nil
}

// Float returns the value of a floating-point or angle keyword.
func (h *Header) Float(keyword string) (float64, error) {
	v, err := h.lookup(keyword)
	if err != nil {
		return 0, err
	}
	f, ok := v.Float()
	if !ok {
		return 0, fmt.Errorf("%s is %s: %w", keyword, v.Kind(), ErrWrongKind)
	}
	return f, nil
}

// Text returns the value of a string keyword.
func (h *Header) Text(keyword string) (string, error) {
	v, err := h.lookup(keyword)
	if err != nil {
		return "", err
	}
	s, ok := v.Text()
	if !ok {
		return "", fmt.Errorf("%s is %s: %w", keyword, v.Kind(), ErrWrongKind)
	}
	return s, nil
}

func (h *Header) lookup(keyword string) (Value, error) {
	v, ok := h.values[keyword]
	if !ok {
		return Value{}, fmt.Errorf("%s: %w", keyword, ErrMissingKeyword)
	}
	return v, nil
}
