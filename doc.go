/*
Package lzp implements LZSS-style pair-token compression and decompression.

Format: a plain byte stream of literals and 4-byte pair tokens, no header and
no terminator. A literal is one byte in [0x00, 0x7F]. A pair token starts with
a byte in [0x80, 0xFF]: 15-bit length = ((byte0 & 0x7F) << 8) | byte1, 16-bit
distance = (byte2 << 8) | byte3. The distance is the absolute position of the
match start in the decoded output, not a backward offset, so references can
only address the first 64 KiB of the stream. Length is bounded to 5..32767:
below 5 the 4-byte token would expand the output, above 32767 the length field
overflows into the marker bit. Source bytes must stay in [0x00, 0x7F]; the
high bit is the literal/pair discriminator.

Use Encode(src, opts) for whole-history match search (quadratic worst case).
Use EncodeWindowed(src, windowSize, opts) to bound the search to a sliding window.
Use EncodeTable(src, opts) for whole-history search through a prefix table; its
output is byte-identical to Encode.
Use Decode(src, opts) to reconstruct the original bytes, nil for defaults.
Use DecodeFromReader(r, opts) to decode from a stream until EOF and get consumed bytes.
Set DecodeOptions.Validate when the stream may not come from a conforming
encoder; out-of-range references then return ErrBadReference instead of
panicking.

The run length measurement behind the match search is exported in three
equivalent variants: WhileEqual (byte at a time), WhileEqualUnrolled (four
independent byte tests per step) and WhileEqualWide (one native word per
step). EncodeOptions.Scan selects which one drives encoding; outputs never
differ, only throughput does.

# Examples

Round-trip encode and decode:

	enc := lzp.Encode(data, nil)
	dec, err := lzp.Decode(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Bounded-history encoding with a 4 KiB window:

	enc := lzp.EncodeWindowed(data, 4096, nil)

Decode a stream of unknown framing and keep the consumed count:

	out, consumed, err := lzp.DecodeFromReader(r, nil)
	if err != nil {
		return err
	}
	_ = consumed

Decode untrusted input with reference validation:

	opts := &lzp.DecodeOptions{Validate: true}
	out, err := lzp.Decode(enc, opts)

Measure a repeated run directly:

	n := lzp.WhileEqualWide(src, from, index) // src[from] == src[index] required
*/
package lzp
