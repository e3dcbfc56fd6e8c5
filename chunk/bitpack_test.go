package chunk

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestBitsForPaletteSize(t *testing.T) {
	cases := []struct {
		size int
		want uint8
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {16, 4}, {17, 5}, {64, 6}, {65, 8}, {256, 8}, {257, 16}, {65536, 16},
	}
	for _, c := range cases {
		got, err := bitsForPaletteSize(c.size)
		if err != nil {
			t.Fatalf("bitsForPaletteSize(%d): unexpected error: %v", c.size, err)
		}
		if got != c.want {
			t.Errorf("bitsForPaletteSize(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, b := range validBitWidths {
		b := b
		t.Run("", func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(b)))
			indices := make([]uint16, indexCount)
			max := uint32(1) << b
			for i := range indices {
				indices[i] = uint16(rng.Uint32() % max)
			}
			packed := packIndices(indices, b)
			if len(packed) != packedByteLen(b) {
				t.Fatalf("packed length = %d, want %d", len(packed), packedByteLen(b))
			}
			got, err := unpackIndices(bytes.NewReader(packed), b)
			if err != nil {
				t.Fatalf("unpackIndices: %v", err)
			}
			if len(got) != indexCount {
				t.Fatalf("unpacked length = %d, want %d", len(got), indexCount)
			}
			for i := range indices {
				if got[i] != indices[i] {
					t.Fatalf("index %d: got %d, want %d (width %d)", i, got[i], indices[i], b)
				}
			}
		})
	}
}

func TestPackIndicesLowBitsFirst(t *testing.T) {
	// b=2, indices [3,2,1,0, ...]: low-bits-first packing puts index 0 in
	// bits [0,2), index 1 in bits [2,4), etc., so the first word is
	// 3<<0 | 2<<2 | 1<<4 | 0<<6 = 0x1B.
	indices := make([]uint16, indexCount)
	indices[0], indices[1], indices[2], indices[3] = 3, 2, 1, 0
	packed := packIndices(indices, 2)
	word := uint32(packed[0]) | uint32(packed[1])<<8 | uint32(packed[2])<<16 | uint32(packed[3])<<24
	if word != 0x0000001B {
		t.Fatalf("first word = 0x%08X, want 0x0000001B", word)
	}
}

func TestUnpackIndicesShortRead(t *testing.T) {
	_, err := unpackIndices(bytes.NewReader(nil), 4)
	if err == nil {
		t.Fatal("expected an error reading from an empty stream")
	}
}
