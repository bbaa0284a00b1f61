// Package sigil derives and renders the deterministic seal attached to every
// message NFT.
//
// A sigil has three independent traits (color, interior glyph, frame shape),
// each selected by a weighted roll derived from the sender address. Distinct
// hash salts per trait keep the three outcomes uncorrelated: a legendary
// color says nothing about the frame.
package sigil

import (
	"github.com/matotam-io/matotam-core/pkg/detrand"
	"github.com/matotam-io/matotam-core/pkg/rarity"
)

// Params holds the three derived traits of a sigil. Same address, same
// params, always.
type Params struct {
	Color    ColorOption
	Interior InteriorOption
	Frame    FrameOption
}

// ParamsFor derives sigil parameters from an address.
func ParamsFor(address string) Params {
	rollColor := detrand.Roll(address + "|color")
	rollInterior := detrand.Roll(address + "|interior")
	rollFrame := detrand.Roll(address + "|frame")

	return Params{
		Color:    rarity.Pick(Colors, rollColor),
		Interior: rarity.Pick(Interiors, rollInterior),
		Frame:    rarity.Pick(Frames, rollFrame),
	}
}

// SVGFor renders the sigil for an address as a standalone SVG document.
func SVGFor(address string, size float64) string {
	return Render(ParamsFor(address), size)
}
