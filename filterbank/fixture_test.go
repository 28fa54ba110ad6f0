package filterbank

import (
	"bytes"
	"encoding/binary"
)

// fixture builds Filterbank header bytes by hand.
type fixture struct {
	buf bytes.Buffer
}

func newFixture() *fixture {
	return &fixture{}
}

func (f *fixture) u32(v uint32) *fixture {
	binary.Write(&f.buf, binary.LittleEndian, v)
	return f
}

func (f *fixture) raw(b ...byte) *fixture {
	f.buf.Write(b)
	return f
}

func (f *fixture) keyword(k string) *fixture {
	f.u32(uint32(len(k)))
	f.buf.WriteString(k)
	return f
}

func (f *fixture) start() *fixture { return f.keyword(HeaderStart) }

func (f *fixture) end() *fixture { return f.keyword(HeaderEnd) }

func (f *fixture) int32(k string, v int32) *fixture {
	f.keyword(k)
	binary.Write(&f.buf, binary.LittleEndian, v)
	return f
}

func (f *fixture) float64(k string, v float64) *fixture {
	f.keyword(k)
	binary.Write(&f.buf, binary.LittleEndian, v)
	return f
}

func (f *fixture) str(k, v string) *fixture {
	f.keyword(k)
	f.u32(uint32(len(v)))
	f.buf.WriteString(v)
	return f
}

func (f *fixture) bytes() []byte {
	return bytes.Clone(f.buf.Bytes())
}

func (f *fixture) len() int {
	return f.buf.Len()
}

// voyagerHeader is the header of the Voyager 1 sample observation.
func voyagerHeader() *fixture {
	return newFixture().start().
		int32("machine_id", 42).
		int32("telescope_id", 6).
		float64("src_raj", 171003.984).
		float64("src_dej", 121058.8).
		float64("az_start", 0).
		float64("za_start", 0).
		int32("data_type", 1).
		float64("fch1", 8421.386717353016).
		float64("foff", -2.7939677238464355e-06).
		int32("nchans", 4).
		int32("nbeams", 1).
		int32("ibeam", 1).
		int32("nbits", 32).
		float64("tstart", 57650.78209490741).
		float64("tsamp", 18.253611008).
		int32("nifs", 1).
		str("source_name", "Voyager1").
		str("rawdatafile", "guppi_57650_67573_Voyager1_0002.0000.raw").
		end()
}
