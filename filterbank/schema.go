package filterbank

import (
	"fmt"
	"slices"
)

// Kind identifies how a keyword's payload is encoded.
type Kind uint8

const (
	KindNone    Kind = iota // sentinels only
	KindInt32               // little-endian int32
	KindString              // u32 length followed by text
	KindFloat64             // little-endian IEEE-754 double
	KindAngle               // double in packed sexagesimal form
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt32:
		return "int32"
	case KindString:
		return "string"
	case KindFloat64:
		return "float64"
	case KindAngle:
		return "angle"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Sentinel keywords.
const (
	HeaderStart = "HEADER_START"
	HeaderEnd   = "HEADER_END"
)

var schema = map[string]Kind{
	"telescope_id":  KindInt32,
	"machine_id":    KindInt32,
	"data_type":     KindInt32,
	"barycentric":   KindInt32,
	"pulsarcentric": KindInt32,
	"nbits":         KindInt32,
	"nsamples":      KindInt32,
	"nchans":        KindInt32,
	"nifs":          KindInt32,
	"nbeams":        KindInt32,
	"ibeam":         KindInt32,
	"rawdatafile":   KindString,
	"source_name":   KindString,
	"az_start":      KindFloat64,
	"za_start":      KindFloat64,
	"tstart":        KindFloat64,
	"tsamp":         KindFloat64,
	"fch1":          KindFloat64,
	"foff":          KindFloat64,
	"refdm":         KindFloat64,
	"period":        KindFloat64,
	"src_raj":       KindAngle,
	"src_dej":       KindAngle,
}

// KindOf returns the payload kind declared for keyword.
func KindOf(keyword string) (Kind, bool) {
	k, ok := schema[keyword]
	return k, ok
}

// Keywords returns every non-sentinel keyword the decoder understands, sorted.
func Keywords() []string {
	keys := make([]string, 0, len(schema))
	for k := range schema {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func isSentinel(keyword string) bool {
	return keyword == HeaderStart || keyword == HeaderEnd
}
