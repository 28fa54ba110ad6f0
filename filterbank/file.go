package filterbank

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// File is an open Filterbank file with its header decoded.
type File struct {
	path   string
	file   *os.File
	header *Header
	size   int64
	closed bool
}

// Open opens a Filterbank file and decodes its header.
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	hdr, err := DecodeHeader(bufio.NewReader(f), opts...)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading header: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat: %w", err)
	}

	return &File{
		path:   path,
		file:   f,
		header: hdr,
		size:   st.Size(),
	}, nil
}

// Close closes the file. Closing an already closed file is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.file.Close()
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Header returns the decoded header.
func (f *File) Header() *Header {
	return f.header
}

// DataOffset returns the offset of the first byte after the header.
func (f *File) DataOffset() int64 {
	return f.header.DataOffset()
}

// DataSize returns the number of bytes after the header.
func (f *File) DataSize() int64 {
	return f.size - f.header.DataOffset()
}

// DataReader returns a reader over the data segment. Readers returned by
// separate calls are independent.
func (f *File) DataReader() (*io.SectionReader, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return io.NewSectionReader(f.file, f.DataOffset(), f.DataSize()), nil
}

// ReadData reads the whole data segment into memory.
func (f *File) ReadData() ([]byte, error) {
	sr, err := f.DataReader()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, sr.Size())
	if _, err := io.ReadFull(sr, buf); err != nil {
		return nil, fmt.Errorf("reading data segment: %w", err)
	}
	return buf, nil
}

// Shape returns the dimensions of the data matrix.
func (f *File) Shape() (Shape, error) {
	return f.header.Shape(f.DataSize())
}

// Shape is the layout of a data matrix: integrations by IFs by channels.
type Shape struct {
	NInts  int64
	NIFs   int
	NChans int
}

// Shape derives the data matrix dimensions for a data segment of dataSize
// bytes from nbits, nifs and nchans.
func (h *Header) Shape(dataSize int64) (Shape, error) {
	nbits, err := h.Int("nbits")
	if err != nil {
		return Shape{}, err
	}
	nifs, err := h.Int("nifs")
	if err != nil {
		return Shape{}, err
	}
	nchans, err := h.Int("nchans")
	if err != nil {
		return Shape{}, err
	}

	bitsPerInt := int64(nbits) * int64(nifs) * int64(nchans)
	if bitsPerInt <= 0 {
		return Shape{}, fmt.Errorf("%w: nbits=%d nifs=%d nchans=%d", ErrInvalidShape, nbits, nifs, nchans)
	}
	if (dataSize*8)%bitsPerInt != 0 {
		return Shape{}, fmt.Errorf("%w: %d bytes is not a whole number of %d-bit integrations",
			ErrInvalidShape, dataSize, bitsPerInt)
	}
	return Shape{
		NInts:  dataSize * 8 / bitsPerInt,
		NIFs:   int(nifs),
		NChans: int(nchans),
	}, nil
}
