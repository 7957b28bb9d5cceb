package lzp_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/lzp"
)

// asciiRandom returns n pseudo-random bytes in [0x00, 0x7F]; the format
// reserves the high bit for the literal/pair discriminator.
func asciiRandom(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Intn(0x80))
	}

	return out
}

func roundTripInputs() map[string][]byte {
	return map[string][]byte{
		"repeated-text":   bytes.Repeat([]byte("lzp round trip text payload "), 128),
		"byte-cycle":      bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 512),
		"single-run":      bytes.Repeat([]byte{'a'}, 512),
		"ascii-random-2k": asciiRandom(2048, 1),
		"mixed":           append(asciiRandom(512, 2), bytes.Repeat([]byte("structure"), 64)...),
	}
}

func TestRoundTrip(t *testing.T) {
	encoders := map[string]func([]byte) []byte{
		"whole-history": func(src []byte) []byte { return lzp.Encode(src, nil) },
		"table":         func(src []byte) []byte { return lzp.EncodeTable(src, nil) },
		"window-256":    func(src []byte) []byte { return lzp.EncodeWindowed(src, 256, nil) },
	}

	for inputName, src := range roundTripInputs() {
		for encName, encode := range encoders {
			t.Run(inputName+"/"+encName, func(t *testing.T) {
				enc := encode(src)

				dec, err := lzp.Decode(enc, nil)
				require.NoError(t, err)
				require.True(t, bytes.Equal(src, dec),
					"round trip mismatch: source %d bytes, decoded %d", len(src), len(dec))
			})
		}
	}
}

func TestRoundTripValidated(t *testing.T) {
	// Validation must accept everything a conforming encoder produces.
	opts := &lzp.DecodeOptions{Validate: true}
	for inputName, src := range roundTripInputs() {
		enc := lzp.Encode(src, nil)

		dec, err := lzp.Decode(enc, opts)
		require.NoError(t, err, inputName)
		assert.True(t, bytes.Equal(src, dec), inputName)
	}
}

func TestNonExpansionOnRepetitiveInputs(t *testing.T) {
	for _, name := range []string{"repeated-text", "byte-cycle", "single-run"} {
		src := roundTripInputs()[name]
		enc := lzp.Encode(src, nil)
		assert.Less(t, len(enc), len(src), name)
	}
}

func TestScannerEquivalenceExported(t *testing.T) {
	src := bytes.Repeat([]byte("abcdefgabcdefg??"), 64)
	rng := rand.New(rand.NewSource(3))

	checked := 0
	for checked < 200 {
		from := rng.Intn(len(src) - 1)
		index := from + 1 + rng.Intn(len(src)-from-1)
		if src[from] != src[index] {
			continue
		}
		checked++

		want := lzp.WhileEqual(src, from, index)
		require.Equal(t, want, lzp.WhileEqualUnrolled(src, from, index), "from=%d index=%d", from, index)
		require.Equal(t, want, lzp.WhileEqualWide(src, from, index), "from=%d index=%d", from, index)
	}
}
