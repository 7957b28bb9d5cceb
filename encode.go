package lzp

import (
	"encoding/binary"
	"fmt"
)

// Encode compresses src searching the whole already-seen history for matches.
// Options nil means DefaultEncodeOptions(). Inputs shorter than MinLookahead
// bytes have no room for a match and come back as a literal-only copy.
//
// Worst case cost is quadratic in len(src): every cursor position may scan all
// prior positions. Use EncodeWindowed for bounded-time encoding or EncodeTable
// for whole-history search at hash-lookup cost.
func Encode(src []byte, opts *EncodeOptions) []byte {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	dst := make([]byte, 0, len(src))

	return encodeNoWindow(dst, src, opts.scanner())
}

// encodeNoWindow appends the encoding of src to dst, scanning candidate match
// starts over the whole history below the cursor.
func encodeNoWindow(dst []byte, src []byte, scan Scanner) []byte {
	if len(src) <= MinLookahead {
		return append(dst, src...)
	}

	// The first MinLookahead bytes always go out as literals: no position
	// below the cursor can anchor a match of at least MinMatch bytes yet.
	dst = append(dst, src[:MinLookahead]...)

	index := MinLookahead
	for index < len(src)-MinLookahead {
		best := pair{}

		// Candidates end at index-MinLookahead-1: a start closer to the cursor
		// cannot reach MinMatch before the left scan cursor hits the anchor.
		// Starts above MaxDistance do not fit the 16-bit distance field.
		limit := index - MinLookahead
		if limit > MaxDistance+1 {
			limit = MaxDistance + 1
		}

		for s := 0; s < limit; s++ {
			if src[s] != src[index] {
				continue
			}

			length := scan(src, s, index)
			if length >= MinMatch && length <= MaxMatch && length > best.length {
				best = pair{distance: s, length: length}
			}
		}

		if best.length == 0 {
			dst = append(dst, src[index])
			index++
		} else {
			dst = appendPair(dst, best)
			index += best.length
		}
	}

	// Remaining lookahead is below MinLookahead bytes; flush it as literals.
	return append(dst, src[index:]...)
}

// EncodeWindowed compresses src searching at most windowSize bytes behind the
// cursor. The first windowSize+1 bytes go out as literals: the window is not
// filled yet, and raw bytes are always a valid encoding. Options nil means
// DefaultEncodeOptions().
//
// A smaller window trades compression ratio for bounded search cost: encoding
// runs in O(len(src) * windowSize), but a better match outside the window is
// invisible. The caller must keep windowSize above zero and below len(src);
// anything else is a usage bug and panics.
func EncodeWindowed(src []byte, windowSize int, opts *EncodeOptions) []byte {
	if windowSize <= 0 || windowSize >= len(src) {
		panic(fmt.Sprintf("lzp: window size %d out of range for %d bytes", windowSize, len(src)))
	}
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	scan := opts.scanner()
	dst := make([]byte, 0, len(src))
	dst = append(dst, src[:windowSize+1]...)

	index := windowSize + 1
	for index < len(src)-MinLookahead {
		best := pair{}

		limit := index - MinLookahead
		if limit > MaxDistance+1 {
			limit = MaxDistance + 1
		}

		for s := index - windowSize; s < limit; s++ {
			if src[s] != src[index] {
				continue
			}

			length := scan(src, s, index)
			if length >= MinMatch && length <= MaxMatch && length > best.length {
				best = pair{distance: s, length: length}
			}
		}

		if best.length == 0 {
			dst = append(dst, src[index])
			index++
		} else {
			dst = appendPair(dst, best)
			index += best.length
		}
	}

	return append(dst, src[index:]...)
}

// prefixKey reads the MinLookahead-byte sequence at pos as one table key.
// Equal keys imply equal first bytes, which is the scanner precondition.
func prefixKey(src []byte, pos int) uint32 {
	return binary.LittleEndian.Uint32(src[pos:])
}

// EncodeTable compresses src with whole-history search like Encode, but finds
// candidate match starts through a table keyed by their first MinLookahead
// bytes instead of scanning every prior position. Output is byte-identical to
// Encode: buckets hold start positions in ascending order, so the earliest
// longest match still wins, and any match of at least MinMatch bytes shares
// its full key with the cursor. Options nil means DefaultEncodeOptions().
func EncodeTable(src []byte, opts *EncodeOptions) []byte {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}
	if len(src) <= MinLookahead {
		return append(make([]byte, 0, len(src)), src...)
	}

	scan := opts.scanner()
	dst := make([]byte, 0, len(src))
	table := make(map[uint32][]int)

	index := 0
	for index < len(src)-MinLookahead {
		best := pair{}

		key := prefixKey(src, index)
		starts := table[key]
		for _, s := range starts {
			if s > MaxDistance {
				break
			}

			length := scan(src, s, index)
			if length >= MinMatch && length <= MaxMatch && length > best.length {
				best = pair{distance: s, length: length}
			}
		}
		table[key] = append(starts, index)

		if best.length == 0 {
			dst = append(dst, src[index])
			index++
		} else {
			dst = appendPair(dst, best)
			// Positions covered by the match still anchor future candidates.
			// Stop keying once fewer than MinLookahead bytes remain.
			for i := index + 1; i < index+best.length && i+MinLookahead <= len(src); i++ {
				k := prefixKey(src, i)
				table[k] = append(table[k], i)
			}
			index += best.length
		}
	}

	return append(dst, src[index:]...)
}
