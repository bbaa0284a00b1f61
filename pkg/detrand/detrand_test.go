package detrand

import (
	"bytes"
	"testing"
)

func TestHash32(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{name: "empty", input: "", want: 0x811c9dc5},
		{name: "single byte", input: "a", want: 0xe40c292c},
		{name: "hello", input: "hello", want: 0x4f9f2cab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hash32(tt.input); got != tt.want {
				t.Errorf("Hash32(%q) = %#x, want %#x", tt.input, got, tt.want)
			}
		})
	}
}

func TestHash32_Deterministic(t *testing.T) {
	seed := "addr1qxfvr8gtytlueqs4mn4f43k0kuvxhwzvs79llh3z7nxgje"
	if Hash32(seed) != Hash32(seed) {
		t.Error("Hash32 is not deterministic")
	}
}

func TestHash32_DifferentSeeds(t *testing.T) {
	if Hash32("seed A") == Hash32("seed B") {
		t.Error("different seeds produced the same hash")
	}
}

func TestBytes_Deterministic(t *testing.T) {
	a := Bytes("pair::a::b", 8)
	b := Bytes("pair::a::b", 8)
	if !bytes.Equal(a, b) {
		t.Errorf("Bytes is not deterministic: %x != %x", a, b)
	}
}

func TestBytes_Length(t *testing.T) {
	for _, n := range []int{0, 1, 8, 32} {
		if got := len(Bytes("seed", n)); got != n {
			t.Errorf("len(Bytes(seed, %d)) = %d", n, got)
		}
	}
}

func TestBytes_DifferentSeeds(t *testing.T) {
	if bytes.Equal(Bytes("one", 8), Bytes("two", 8)) {
		t.Error("different seeds produced identical byte streams")
	}
}

func TestRoll_Range(t *testing.T) {
	seeds := []string{"", "a", "hello", "addr1xyz|color", "addr1xyz|interior"}
	for _, s := range seeds {
		r := Roll(s)
		if r < 0 || r > 1 {
			t.Errorf("Roll(%q) = %v, out of [0,1]", s, r)
		}
	}
}

func TestMapByte(t *testing.T) {
	if got := MapByte(0, 6, 14); got != 6 {
		t.Errorf("MapByte(0, 6, 14) = %v, want 6", got)
	}
	if got := MapByte(255, 6, 14); got != 14 {
		t.Errorf("MapByte(255, 6, 14) = %v, want 14", got)
	}
	mid := MapByte(128, 0, 1)
	if mid <= 0.5-0.01 || mid >= 0.5+0.01 {
		t.Errorf("MapByte(128, 0, 1) = %v, want ~0.5", mid)
	}
}
