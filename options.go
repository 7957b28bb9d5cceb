package lzp

// ScanMode selects the run scanner variant used by the match finder.
type ScanMode int

// Scanner variant constants. All variants return identical counts for the same
// valid arguments; they differ only in memory-access width and speed.
const (
	ScanWide     ScanMode = iota // Native-word comparisons (default, fastest).
	ScanUnrolled                 // Four independent byte-pair tests per iteration.
	ScanScalar                   // One byte-pair per iteration.
)

// EncodeOptions configures Encode, EncodeWindowed and EncodeTable behavior.
type EncodeOptions struct {
	// Scan selects the run scanner variant used to measure match lengths.
	Scan ScanMode
}

// DefaultEncodeOptions returns options for default encoding (word-width scanner).
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		Scan: ScanWide,
	}
}

// DecodeOptions configures Decode behavior.
type DecodeOptions struct {
	// Validate: if true, Decode checks every pair token against the output
	// produced so far and returns ErrBadReference for out-of-range references.
	// If false, the decoder trusts the producer; a malformed stream panics.
	Validate bool
	// SizeHint pre-sizes the output buffer when the caller knows the
	// decompressed length. 0 means size from the compressed input length.
	SizeHint int
}

// DefaultDecodeOptions returns options for default decoding: trust the
// producer, size the output from the input length.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{}
}

// scanner returns the Scanner implementing the configured mode.
func (o *EncodeOptions) scanner() Scanner {
	switch o.Scan {
	case ScanUnrolled:
		return WhileEqualUnrolled
	case ScanScalar:
		return WhileEqual
	default:
		return WhileEqualWide
	}
}
