package chunk

import (
	"fmt"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// PaletteEntry is a single entry of a BlockStorage's palette: the namespaced
// block identifier and its auxiliary state value, exactly as persisted on
// disk. Val is stored signed on disk; BlockStorage callers reinterpret it as
// the bit pattern of an unsigned value, per the format's convention for
// negative auxiliary values.
type PaletteEntry struct {
	Name string
	Val  int16
}

// decodePaletteEntries reads n self-delimiting NBT palette entries from dec,
// the way the teacher's disk decoder reads entity and block-NBT records:
// repeated little-endian NBT compounds back to back with no length prefix
// between them. Unknown fields are ignored; a missing name or val is a
// format error.
func decodePaletteEntries(dec *nbt.Decoder, n int) ([]PaletteEntry, error) {
	entries := make([]PaletteEntry, n)
	for i := range entries {
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decoding palette entry %d: %v", ErrFormat, i, err)
		}
		entry, err := paletteEntryFromNBT(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: palette entry %d: %v", ErrFormat, i, err)
		}
		entries[i] = entry
	}
	return entries, nil
}

func paletteEntryFromNBT(raw map[string]any) (PaletteEntry, error) {
	nameVal, ok := raw["name"]
	if !ok {
		return PaletteEntry{}, fmt.Errorf("missing 'name' field")
	}
	name, ok := nameVal.(string)
	if !ok {
		return PaletteEntry{}, fmt.Errorf("'name' field has unexpected type %T", nameVal)
	}
	valVal, ok := raw["val"]
	if !ok {
		return PaletteEntry{}, fmt.Errorf("missing 'val' field")
	}
	val, ok := valVal.(int16)
	if !ok {
		return PaletteEntry{}, fmt.Errorf("'val' field has unexpected type %T", valVal)
	}
	return PaletteEntry{Name: name, Val: val}, nil
}

// encodePaletteEntry writes a single palette entry as a little-endian NBT
// compound holding only the name and val fields, matching what
// decodePaletteEntries expects back.
func encodePaletteEntry(enc *nbt.Encoder, e PaletteEntry) error {
	return enc.Encode(map[string]any{
		"name": e.Name,
		"val":  e.Val,
	})
}
