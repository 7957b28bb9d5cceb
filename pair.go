package lzp

import "encoding/binary"

// pair is one length-distance token: distance is the absolute position of the
// earlier occurrence in the stream, length the number of bytes it reproduces.
type pair struct {
	distance int
	length   int
}

// appendPair packs p into a 32-bit word, high 16 bits length with the marker
// bit set, low 16 bits distance, and appends its 4 bytes big-endian.
// The caller guarantees MinMatch <= length <= MaxMatch and
// distance <= MaxDistance; values outside corrupt adjacent fields.
func appendPair(dst []byte, p pair) []byte {
	word := uint32(p.length|lenFlagMask)<<16 | uint32(p.distance) // #nosec G115 -- bounds guaranteed by the match finder
	return binary.BigEndian.AppendUint32(dst, word)
}

// unpackPair decodes a token from its marker byte b0 and the three bytes that
// follow it: 15-bit length from b0 (marker bit stripped) and b1, 16-bit
// distance from b2 and b3.
func unpackPair(b0, b1, b2, b3 byte) pair {
	return pair{
		length:   int(b0&^FlagBit)<<8 | int(b1),
		distance: int(b2)<<8 | int(b3),
	}
}
