package mcworld

import "testing"

func TestDimensionString(t *testing.T) {
	cases := map[Dimension]string{Overworld: "Overworld", Nether: "Nether", End: "End"}
	for dim, want := range cases {
		if got := dim.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", dim, got, want)
		}
	}
	if got := Dimension(99).String(); got == "" {
		t.Error("String() of an unknown dimension must not be empty")
	}
}

func TestDimensionByID(t *testing.T) {
	cases := []struct {
		id     uint32
		want   Dimension
		wantOk bool
	}{
		{0, Overworld, true},
		{1, Nether, true},
		{2, End, true},
		{3, 0, false},
	}
	for _, c := range cases {
		got, ok := DimensionByID(c.id)
		if ok != c.wantOk {
			t.Errorf("DimensionByID(%d) ok = %v, want %v", c.id, ok, c.wantOk)
			continue
		}
		if ok && got != c.want {
			t.Errorf("DimensionByID(%d) = %v, want %v", c.id, got, c.want)
		}
	}
}
