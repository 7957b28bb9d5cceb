package lzp

import "io"

// sliceByteReader adapts a byte slice to io.ByteReader for the decode core.
type sliceByteReader struct {
	data []byte // The compressed input.
	pos  int    // The current position in the input.
}

// countingByteReader wraps an io.ByteReader and counts consumed bytes, so
// DecodeFromReader can report how far it advanced the stream.
type countingByteReader struct {
	base  io.ByteReader // The underlying byte reader.
	count int64         // The number of bytes read so far.
}

// ReadByte returns the next input byte or io.EOF past the end.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads one byte from the base reader and counts it.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
