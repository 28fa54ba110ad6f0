package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestReaderReadUint32(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(0x12345678))
	binary.Write(&buf, binary.LittleEndian, uint32(0xDEADBEEF))

	r := NewBytesReader(buf.Bytes())

	v, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v)

	v, err = r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)
	assert.Equal(t, int64(8), r.Pos())
}

func TestReaderReadInt32(t *testing.T) {
	// -2 little-endian
	r := NewBytesReader([]byte{0xFE, 0xFF, 0xFF, 0xFF})

	v, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-2), v)
}

func TestReaderReadFloat64(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, 1420.0)
	binary.Write(&buf, binary.LittleEndian, math.Inf(-1))

	r := NewBytesReader(buf.Bytes())

	v, err := r.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, 1420.0, v)

	v, err = r.ReadFloat64()
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}

func TestReaderByteOrder(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01, 0x02}

	le := NewReader(bytes.NewReader(data), DefaultConfig())
	v, err := le.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x02010000), v)

	be := NewReader(bytes.NewReader(data), Config{ByteOrder: binary.BigEndian})
	v, err = be.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00000102), v)

	// A zero Config falls back to little-endian.
	assert.Equal(t, binary.LittleEndian, NewReader(bytes.NewReader(nil), Config{}).ByteOrder())
}

func TestReaderReadBytesZero(t *testing.T) {
	r := NewBytesReader([]byte{0x01})

	b, err := r.ReadBytes(0)
	require.NoError(t, err)
	assert.Nil(t, b)
	assert.Equal(t, int64(0), r.Pos())
}

func TestReaderShortRead(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		read    func(r *Reader) error
		want    int
		have    int
		lastPos int64
	}{
		{
			name: "empty uint32",
			data: nil,
			read: func(r *Reader) error { _, err := r.ReadUint32(); return err },
			want: 4,
		},
		{
			name:    "float64 with 3 bytes left",
			data:    []byte{1, 2, 3},
			read:    func(r *Reader) error { _, err := r.ReadFloat64(); return err },
			want:    8,
			have:    3,
			lastPos: 3,
		},
		{
			name:    "large read on small input",
			data:    make([]byte, 10),
			read:    func(r *Reader) error { _, err := r.ReadBytes(1 << 30); return err },
			want:    1 << 30,
			have:    10,
			lastPos: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewBytesReader(tt.data)
			err := tt.read(r)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrShortRead)

			var sre *ShortReadError
			require.True(t, errors.As(err, &sre))
			assert.Equal(t, int64(0), sre.Offset)
			assert.Equal(t, tt.want, sre.Want)
			assert.Equal(t, tt.have, sre.Have)
			assert.Equal(t, tt.lastPos, r.Pos())
		})
	}
}

func TestReaderShortReadOffset(t *testing.T) {
	r := NewBytesReader([]byte{1, 2, 3, 4, 5, 6})

	_, err := r.ReadUint32()
	require.NoError(t, err)

	_, err = r.ReadUint32()
	var sre *ShortReadError
	require.ErrorAs(t, err, &sre)
	assert.Equal(t, int64(4), sre.Offset)
	assert.Equal(t, 2, sre.Have)
	assert.Contains(t, err.Error(), "offset 4")
}

func TestReaderSourceError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom), DefaultConfig())

	_, err := r.ReadUint32()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrShortRead)
}

// Sources that hand out a few bytes per Read call must decode the same as a
// single buffer.
func TestReaderFragmentedSource(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(7))
	binary.Write(&buf, binary.LittleEndian, 3.5)
	buf.Write(bytes.Repeat([]byte{'x'}, maxEagerRead+1))

	for name, src := range map[string]io.Reader{
		"one byte": iotest.OneByteReader(bytes.NewReader(buf.Bytes())),
		"half":     iotest.HalfReader(bytes.NewReader(buf.Bytes())),
	} {
		t.Run(name, func(t *testing.T) {
			r := NewReader(src, DefaultConfig())

			u, err := r.ReadUint32()
			require.NoError(t, err)
			assert.Equal(t, uint32(7), u)

			f, err := r.ReadFloat64()
			require.NoError(t, err)
			assert.Equal(t, 3.5, f)

			b, err := r.ReadBytes(maxEagerRead + 1)
			require.NoError(t, err)
			assert.Len(t, b, maxEagerRead+1)
			assert.Equal(t, int64(buf.Len()), r.Pos())
		})
	}
}

func TestReaderPosMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")
		sizes := rapid.SliceOf(rapid.IntRange(0, 16)).Draw(t, "sizes")

		r := NewBytesReader(data)
		var last int64
		for _, n := range sizes {
			b, err := r.ReadBytes(n)
			if r.Pos() < last {
				t.Fatalf("position moved backwards: %d -> %d", last, r.Pos())
			}
			if err == nil && len(b) != n && n > 0 {
				t.Fatalf("ReadBytes(%d) returned %d bytes", n, len(b))
			}
			last = r.Pos()
		}
		if r.Pos() > int64(len(data)) {
			t.Fatalf("position %d past end of %d-byte source", r.Pos(), len(data))
		}
	})
}
