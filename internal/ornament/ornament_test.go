package ornament

import (
	"strings"
	"testing"
)

func TestPairKey_OrderIndependent(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"addr1alpha", "addr1beta"},
		{"addr1beta", "addr1alpha"},
		{"  addr1alpha  ", "addr1beta"},
	}
	want := PairKey("addr1alpha", "addr1beta")
	for _, tt := range tests {
		if got := PairKey(tt.a, tt.b); got != want {
			t.Errorf("PairKey(%q, %q) = %q, want %q", tt.a, tt.b, got, want)
		}
	}
}

func TestPairKey_Empty(t *testing.T) {
	if got := PairKey("", "  "); got != "pair::empty" {
		t.Errorf("PairKey of blanks = %q, want pair::empty", got)
	}
	if got := PairKey("", "addr1x"); got != "::addr1x" {
		t.Errorf("PairKey(\"\", addr1x) = %q", got)
	}
}

func TestParamsFor_Deterministic(t *testing.T) {
	a := ParamsFor("addr1sender", "addr1receiver", 1, 42)
	b := ParamsFor("addr1sender", "addr1receiver", 1, 42)
	if a != b {
		t.Errorf("ParamsFor is not deterministic: %+v != %+v", a, b)
	}
}

func TestParamsFor_PairSymmetry(t *testing.T) {
	a := ParamsFor("addr1sender", "addr1receiver", 0, 7)
	b := ParamsFor("addr1receiver", "addr1sender", 0, 7)
	if a != b {
		t.Errorf("swapped addresses changed the ornament: %+v != %+v", a, b)
	}
}

func TestParamsFor_Ranges(t *testing.T) {
	// Jitter scales amplitude and spread by at most +-2%.
	addrs := []string{
		"addr1qxfvr8gtytlueqs4mn4f43k0kuvxhwzvs79llh3z7nxgje",
		"addr1q94fu2pex5yctced6cln7f76yewpryjrcrr2c7044uv24d",
		"addr1q9nfaxtq4q7qycu6qpv8rhuanshjhxrpa84lv99ng2pxeg",
		"short", "a", "b", "c", "d", "e", "f",
	}
	for i, a := range addrs {
		for j, b := range addrs {
			p := ParamsFor(a, b, 0, i+j)
			if p.ArchetypeIndex < 0 || p.ArchetypeIndex > 7 {
				t.Fatalf("archetype %d out of range", p.ArchetypeIndex)
			}
			if p.Layers < 1 || p.Layers > 3 {
				t.Fatalf("layers %d out of range", p.Layers)
			}
			if p.Amplitude < 4*0.98 || p.Amplitude > 14*1.2*1.02 {
				t.Fatalf("amplitude %v out of range", p.Amplitude)
			}
			if p.Curvature < 0.20 || p.Curvature > 0.90 {
				t.Fatalf("curvature %v out of range", p.Curvature)
			}
			if p.StrokeWidth < 1.0 || p.StrokeWidth > 1.35 {
				t.Fatalf("stroke width %v out of range", p.StrokeWidth)
			}
			if p.Spread < 90*0.98 || p.Spread > 150*1.02 {
				t.Fatalf("spread %v out of range", p.Spread)
			}
		}
	}
}

func TestParamsFor_ArchetypeConstraints(t *testing.T) {
	// Single-layer archetypes must always report one layer, the twin swirl
	// two or three, the double arc exactly two.
	for i := 0; i < 200; i++ {
		p := ParamsFor("addr"+strings.Repeat("x", i%7), "addr"+strings.Repeat("y", i%11), 0, 0)
		switch p.ArchetypeIndex {
		case SoftWave, MinimalArc:
			if p.Layers != 1 {
				t.Fatalf("archetype %d has %d layers, want 1", p.ArchetypeIndex, p.Layers)
			}
		case TwinSwirl:
			if p.Layers < 2 || p.Layers > 3 {
				t.Fatalf("twin swirl has %d layers, want 2-3", p.Layers)
			}
		case DoubleArc:
			if p.Layers != 2 {
				t.Fatalf("double arc has %d layers, want 2", p.Layers)
			}
		}
	}
}

func TestParamsFor_DayJitter(t *testing.T) {
	base := ParamsFor("addr1a", "addr1b", 0, 2) // day%5-2 == 0, no jitter
	up := ParamsFor("addr1a", "addr1b", 0, 4)   // +2%

	if base.ArchetypeIndex != up.ArchetypeIndex {
		t.Fatal("jitter must not change the archetype")
	}
	if base.Layers != up.Layers || base.Curvature != up.Curvature {
		t.Fatal("jitter must only touch amplitude and spread")
	}
	wantAmp := base.Amplitude * 1.02
	if diff := up.Amplitude - wantAmp; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("amplitude with +2%% jitter = %v, want %v", up.Amplitude, wantAmp)
	}
	wantSpread := base.Spread * 1.02
	if diff := up.Spread - wantSpread; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("spread with +2%% jitter = %v, want %v", up.Spread, wantSpread)
	}
}

func TestBuildPaths(t *testing.T) {
	p := ParamsFor("addr1sender", "addr1receiver", 0, 1)
	paths := BuildPaths(p, 300, 500)

	if len(paths.Left) != p.Layers || len(paths.Right) != p.Layers {
		t.Fatalf("got %d/%d paths, want %d layers each", len(paths.Left), len(paths.Right), p.Layers)
	}
	for _, d := range append(append([]string{}, paths.Left...), paths.Right...) {
		if !strings.HasPrefix(d, "M ") {
			t.Errorf("path does not start with a move command: %q", d)
		}
	}

	// Byte-identical on repeat invocation.
	again := BuildPaths(p, 300, 500)
	for i := range paths.Left {
		if paths.Left[i] != again.Left[i] || paths.Right[i] != again.Right[i] {
			t.Fatal("path construction is not deterministic")
		}
	}
}

func TestBuildPaths_Mirrored(t *testing.T) {
	p := Params{ArchetypeIndex: SoftWave, Amplitude: 10, Curvature: 0.5, StrokeWidth: 1.2, Spread: 120, Layers: 1}
	paths := BuildPaths(p, 300, 500)

	// Left starts at centerX-40, right at centerX+40.
	if !strings.HasPrefix(paths.Left[0], "M 260 ") {
		t.Errorf("left path start = %q, want M 260 ...", paths.Left[0])
	}
	if !strings.HasPrefix(paths.Right[0], "M 340 ") {
		t.Errorf("right path start = %q, want M 340 ...", paths.Right[0])
	}
}
