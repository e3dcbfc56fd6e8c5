package chunk

import "testing"

func TestPaletteEntryFromNBTMissingFields(t *testing.T) {
	if _, err := paletteEntryFromNBT(map[string]any{"val": int16(0)}); err == nil {
		t.Fatal("expected an error for a palette entry missing 'name'")
	}
	if _, err := paletteEntryFromNBT(map[string]any{"name": "minecraft:stone"}); err == nil {
		t.Fatal("expected an error for a palette entry missing 'val'")
	}
}

func TestPaletteEntryFromNBTIgnoresUnknownFields(t *testing.T) {
	entry, err := paletteEntryFromNBT(map[string]any{
		"name":    "minecraft:stone",
		"val":     int16(0),
		"unused":  "ignored",
		"version": int32(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Name != "minecraft:stone" || entry.Val != 0 {
		t.Fatalf("got %+v", entry)
	}
}
