package mcdb

import (
	"bytes"
	"testing"

	"github.com/blockvault/mcworld"
)

func TestEncodeKeyOverworld(t *testing.T) {
	// S1: SubchunkPos{x=-21,z=3,sy=5,dim=Overworld} -> EB FF FF FF 03 00 00 00 2F 05.
	pos := mcworld.SubchunkPos{X: -21, Z: 3, Y: 5, Dimension: mcworld.Overworld}
	want := []byte{0xEB, 0xFF, 0xFF, 0xFF, 0x03, 0x00, 0x00, 0x00, 0x2F, 0x05}
	got := encodeKey(pos)
	if !bytes.Equal(got, want) {
		t.Fatalf("encodeKey(%v) = % X, want % X", pos, got, want)
	}
}

func TestEncodeKeyLength(t *testing.T) {
	cases := []struct {
		dim    mcworld.Dimension
		length int
	}{
		{mcworld.Overworld, 10},
		{mcworld.Nether, 14},
		{mcworld.End, 14},
	}
	for _, c := range cases {
		key := encodeKey(mcworld.SubchunkPos{X: 1, Z: 2, Y: 3, Dimension: c.dim})
		if len(key) != c.length {
			t.Errorf("dimension %s: key length = %d, want %d", c.dim, len(key), c.length)
		}
	}
}

func TestKeyRoundTrip(t *testing.T) {
	xs := []int32{0, 1, -1, 1000000, -1000000}
	dims := []mcworld.Dimension{mcworld.Overworld, mcworld.Nether, mcworld.End}
	for _, x := range xs {
		for _, z := range xs {
			for _, dim := range dims {
				for sy := uint8(0); sy < 16; sy++ {
					pos := mcworld.SubchunkPos{X: x, Z: z, Y: sy, Dimension: dim}
					key := encodeKey(pos)
					got, ok, err := decodeKey(key)
					if err != nil {
						t.Fatalf("decodeKey(%v): %v", pos, err)
					}
					if !ok {
						t.Fatalf("decodeKey(%v): expected ok=true", pos)
					}
					if got != pos {
						t.Fatalf("round trip mismatch: got %v, want %v", got, pos)
					}
				}
			}
		}
	}
}

func TestDecodeKeySkipsNonBlockRecords(t *testing.T) {
	cases := [][]byte{
		[]byte("player_some-uuid"),
		[]byte("digp"),
		{1, 2, 3},
		make([]byte, 10), // right length, wrong prefix byte (zero)
	}
	for _, key := range cases {
		_, ok, err := decodeKey(key)
		if err != nil {
			t.Fatalf("decodeKey(% X): unexpected error %v", key, err)
		}
		if ok {
			t.Fatalf("decodeKey(% X): expected ok=false", key)
		}
	}
}

func TestDecodeKeyRejectsUnknownDimension(t *testing.T) {
	key := make([]byte, 14)
	key[8] = 99 // not 0, 1 or 2
	key[12] = blockRecordPrefix
	_, ok, err := decodeKey(key)
	if !ok {
		t.Fatalf("expected ok=true for a correctly-shaped key with a bad dimension id")
	}
	if err == nil {
		t.Fatalf("expected an error for an unrecognised dimension id")
	}
}
