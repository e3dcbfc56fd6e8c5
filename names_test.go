package mcworld

import "testing"

func TestNewNameTableSeedsAir(t *testing.T) {
	tbl := NewNameTable()
	if got := tbl.GetID("minecraft:air"); got != AirID {
		t.Errorf("GetID(minecraft:air) = %d, want AirID (%d)", got, AirID)
	}
	if got := tbl.GetName(AirID); got != "minecraft:air" {
		t.Errorf("GetName(AirID) = %q, want minecraft:air", got)
	}
}

func TestNameTableInternIsStableAndBijective(t *testing.T) {
	tbl := NewNameTable()
	stone := tbl.GetID("minecraft:stone")
	dirt := tbl.GetID("minecraft:dirt")
	stoneAgain := tbl.GetID("minecraft:stone")

	if stone != stoneAgain {
		t.Errorf("GetID(minecraft:stone) returned different ids across calls: %d vs %d", stone, stoneAgain)
	}
	if stone == dirt {
		t.Errorf("two distinct names interned to the same id %d", stone)
	}
	if tbl.GetName(stone) != "minecraft:stone" {
		t.Errorf("GetName(stone id) = %q, want minecraft:stone", tbl.GetName(stone))
	}
	if tbl.GetName(dirt) != "minecraft:dirt" {
		t.Errorf("GetName(dirt id) = %q, want minecraft:dirt", tbl.GetName(dirt))
	}
}

func TestNameTableLen(t *testing.T) {
	tbl := NewNameTable()
	if tbl.Len() != 1 {
		t.Fatalf("fresh table Len() = %d, want 1 (air only)", tbl.Len())
	}
	tbl.GetID("minecraft:stone")
	tbl.GetID("minecraft:dirt")
	tbl.GetID("minecraft:stone") // repeat, must not grow the table
	if tbl.Len() != 3 {
		t.Fatalf("Len() after 2 distinct interns = %d, want 3", tbl.Len())
	}
}
