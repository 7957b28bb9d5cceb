package lzp

// Pair-token format constants.
const (
	FlagBit      = 0x80  // Top bit of the first token byte: set = pair, clear = literal.
	MinMatch     = 5     // Shortest run worth a 4-byte pair token.
	MaxMatch     = 32767 // Longest encodable run (15-bit length field).
	MaxDistance  = 65535 // Highest encodable match start (16-bit absolute position).
	PairSize     = 4     // Encoded pair token size in bytes.
	MinLookahead = 4     // Literal preamble length; match search needs this much lookahead.
)

// Pair marker bit inside the 16-bit length half of a packed token.
const lenFlagMask = 1 << 15
