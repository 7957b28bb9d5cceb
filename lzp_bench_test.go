package lzp

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func BenchmarkWhileEqual(b *testing.B) {
	// Two identical random halves: every variant must count the full 2000.
	rng := rand.New(rand.NewSource(42))
	half := make([]byte, 2000)
	rng.Read(half)
	src := append(append([]byte{}, half...), half...)

	for _, v := range scanVariants {
		b.Run(v.name, func(b *testing.B) {
			b.SetBytes(2000)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if got := v.fn(src, 0, 2000); got != 2000 {
					b.Fatalf("got %d", got)
				}
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	data := benchInput[:4096]
	modes := []struct {
		name string
		mode ScanMode
	}{
		{"wide", ScanWide},
		{"unrolled", ScanUnrolled},
		{"scalar", ScanScalar},
	}

	for _, m := range modes {
		opts := &EncodeOptions{Scan: m.mode}
		b.Run(m.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Encode(data, opts)
			}
		})
	}
}

func BenchmarkEncodeWindowed(b *testing.B) {
	data := benchInput[:8192]
	for _, window := range []int{64, 256, 1024, 4096} {
		b.Run(fmt.Sprintf("window-%d", window), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = EncodeWindowed(data, window, nil)
			}
		})
	}
}

func BenchmarkEncodeTable(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EncodeTable(data, nil)
	}
}

func BenchmarkDecode(b *testing.B) {
	enc := EncodeTable(benchInput, nil)
	opts := &DecodeOptions{SizeHint: len(benchInput)}
	b.ReportAllocs()
	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(enc, opts)
	}
}
