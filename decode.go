package lzp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decode reconstructs the original bytes from a compressed stream produced by
// Encode, EncodeWindowed or EncodeTable (the wire format does not record which
// one). Options nil means DefaultDecodeOptions().
//
// The stream carries no length or terminator; decoding consumes src entirely.
// By default the decoder trusts its producer: a stream with out-of-range
// references panics unless DecodeOptions.Validate is set.
func Decode(src []byte, opts *DecodeOptions) ([]byte, error) {
	reader := &sliceByteReader{data: src}

	return decodeFromByteReader(reader, len(src), opts)
}

// DecodeFromReader decodes one compressed stream from r until EOF and returns
// the decoded bytes and the number of input bytes consumed.
func DecodeFromReader(r io.Reader, opts *DecodeOptions) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := decodeFromByteReader(countingReader, 0, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decodeFromByteReader decodes from a byte reader until EOF. srcLen sizes the
// output buffer when no explicit hint is given; 0 lets append grow it.
func decodeFromByteReader(r io.ByteReader, srcLen int, opts *DecodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	hint := opts.SizeHint
	if hint <= 0 {
		hint = srcLen
	}
	out := make([]byte, 0, hint)

	for {
		b0, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}

			return nil, err
		}

		// Literal: top bit clear, one byte, appended as-is.
		if b0 < FlagBit {
			out = append(out, b0)
			continue
		}

		// Pair token: the marker byte plus three more.
		var rest [PairSize - 1]byte
		for k := range rest {
			b, err := r.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("%w: got %d of %d token bytes", ErrUnexpectedEOF, k+1, PairSize)
				}

				return nil, err
			}
			rest[k] = b
		}

		p := unpackPair(b0, rest[0], rest[1], rest[2])
		if opts.Validate && p.distance+p.length > len(out) {
			return nil, fmt.Errorf("%w: distance=%d length=%d produced=%d",
				ErrBadReference, p.distance, p.length, len(out))
		}

		// The referenced range ends at or before the current output length
		// (the encoder bounds every match so the copy source never reaches
		// the position it was found at), so this append reads only settled
		// bytes and no overlapping copy is ever needed.
		out = append(out, out[p.distance:p.distance+p.length]...)
	}
}
