package sigil

import (
	"strings"
	"testing"

	"github.com/matotam-io/matotam-core/pkg/rarity"
)

func TestTables_WeightsSumToOne(t *testing.T) {
	if !rarity.CheckWeights(Colors, 1e-9) {
		t.Error("color table probabilities do not sum to 1.0")
	}
	if !rarity.CheckWeights(Interiors, 1e-9) {
		t.Error("interior table probabilities do not sum to 1.0")
	}
	if !rarity.CheckWeights(Frames, 1e-9) {
		t.Error("frame table probabilities do not sum to 1.0")
	}
}

func TestTables_Size(t *testing.T) {
	if len(Colors) != 12 || len(Interiors) != 12 || len(Frames) != 12 {
		t.Errorf("tables sized %d/%d/%d, want 12 each", len(Colors), len(Interiors), len(Frames))
	}
}

func TestParamsFor_Deterministic(t *testing.T) {
	const addr = "addr1_same_value"
	a := ParamsFor(addr)
	b := ParamsFor(addr)
	if a.Color.ID != b.Color.ID || a.Interior.ID != b.Interior.ID || a.Frame.ID != b.Frame.ID {
		t.Errorf("ParamsFor is not deterministic: %+v != %+v", a, b)
	}
}

func TestParamsFor_IndependentTraits(t *testing.T) {
	// Distinct salts should decorrelate the three rolls: across a spread of
	// addresses the trait combinations must not be locked together.
	seen := map[string]bool{}
	addrs := []string{
		"addr1qxfvr8gtytlueqs4mn4f43k0kuvxhwzvs79llh3z7nxgje",
		"addr1q94fu2pex5yctced6cln7f76yewpryjrcrr2c7044uv24d",
		"addr1q9nfaxtq4q7qycu6qpv8rhuanshjhxrpa84lv99ng2pxeg",
		"addr1aaa", "addr1bbb", "addr1ccc", "addr1ddd", "addr1eee",
		"addr1fff", "addr1ggg", "addr1hhh", "addr1iii",
	}
	for _, a := range addrs {
		p := ParamsFor(a)
		seen[p.Color.ID+"/"+p.Interior.ID+"/"+p.Frame.ID] = true
	}
	if len(seen) < len(addrs)/2 {
		t.Errorf("only %d distinct trait combos across %d addresses", len(seen), len(addrs))
	}
}

func TestRender_EveryCombination(t *testing.T) {
	// Every frame and interior must render something non-empty and
	// well-formed enough to embed.
	for _, frame := range Frames {
		for _, interior := range Interiors {
			p := Params{Color: Colors[0], Interior: interior, Frame: frame}
			svg := Render(p, 64)
			if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>") {
				t.Fatalf("frame %s interior %s: not an svg document", frame.ID, interior.ID)
			}
			if strings.Contains(svg, "NaN") || strings.Contains(svg, "Inf") {
				t.Fatalf("frame %s interior %s: bad numeric output", frame.ID, interior.ID)
			}
			if strings.Contains(svg, " id=") {
				t.Fatalf("frame %s interior %s: element id would collide on embedding", frame.ID, interior.ID)
			}
		}
	}
}

func TestRender_UnknownIDsFallBack(t *testing.T) {
	p := Params{
		Color:    Colors[3],
		Interior: InteriorOption{ID: "does_not_exist"},
		Frame:    FrameOption{ID: "also_missing"},
	}
	svg := Render(p, 64)
	if !strings.Contains(svg, "<circle") {
		t.Error("unknown ids should fall back to circle primitives")
	}
}

func TestSVGFor_ByteIdentical(t *testing.T) {
	const addr = "addr1_same_value"
	if SVGFor(addr, 64) != SVGFor(addr, 64) {
		t.Error("SVGFor is not byte-identical across calls")
	}
}

func TestFragment_NoWrapper(t *testing.T) {
	p := ParamsFor("addr1fragment")
	frag := Fragment(p, 64)
	if strings.Contains(frag, "<svg") {
		t.Error("fragment must not contain an svg wrapper")
	}
	if frag == "" {
		t.Error("fragment is empty")
	}
}

func TestParamsFor_RareTraitsReachable(t *testing.T) {
	// Sanity check that the cumulative scan can select non-first options.
	colorIDs := map[string]bool{}
	for i := 0; i < 400; i++ {
		p := ParamsFor("addr1probe" + strings.Repeat("q", i%40) + string(rune('a'+i%26)))
		colorIDs[p.Color.ID] = true
	}
	if len(colorIDs) < 5 {
		t.Errorf("only %d distinct colors over 400 addresses; picker looks stuck", len(colorIDs))
	}
}
