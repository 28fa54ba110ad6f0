package filterbank

import (
	"math"
	"strconv"
	"strings"
)

// Value is a decoded header value. Exactly one of the payload fields is
// meaningful, selected by Kind.
type Value struct {
	kind Kind
	i    int32
	f    float64
	s    string
}

// IntValue returns a KindInt32 value.
func IntValue(v int32) Value { return Value{kind: KindInt32, i: v} }

// FloatValue returns a KindFloat64 value.
func FloatValue(v float64) Value { return Value{kind: KindFloat64, f: v} }

// AngleValue returns a KindAngle value holding an already converted decimal angle.
func AngleValue(v float64) Value { return Value{kind: KindAngle, f: v} }

// StringValue returns a KindString value.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload. ok is false unless Kind is KindInt32.
func (v Value) Int() (int32, bool) {
	return v.i, v.kind == KindInt32
}

// Float returns the floating-point payload of a KindFloat64 or KindAngle value.
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat64 || v.kind == KindAngle
}

// Text returns the payload of a KindString value.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindString
}

// Interface returns the payload as int32, float64 or string, or nil for a
// sentinel value.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt32:
		return v.i
	case KindFloat64, KindAngle:
		return v.f
	case KindString:
		return v.s
	case KindNone:
		return nil
	}
	panic("filterbank: invalid kind " + v.kind.String())
}

// String renders the value the way the header dump prints it.
func (v Value) String() string {
	switch v.kind {
	case KindInt32:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat64, KindAngle:
		return formatFloat(v.f)
	case KindString:
		return v.s
	case KindNone:
		return ""
	}
	panic("filterbank: invalid kind " + v.kind.String())
}

// formatFloat produces the shortest representation that round-trips, always
// with a fractional part or an exponent: 1420.0, 0.000125, 1e-05, 1e+16.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Element is one decoded keyword/value pair.
type Element struct {
	Keyword string
	Value   Value
}

// IsSentinel reports whether the element is HEADER_START or HEADER_END.
func (e Element) IsSentinel() bool {
	return isSentinel(e.Keyword)
}
