// Package ornament derives the symmetric pair of decorative flourish paths
// drawn beneath a message bubble.
//
// The ornament is a property of the conversation, not of one participant:
// parameters are derived from an order-independent key of the two addresses,
// so sender and receiver always see the same flourishes. A small day-based
// jitter makes the ornament "breathe" over time without changing its shape
// family.
package ornament

import (
	"strconv"
	"strings"

	"github.com/matotam-io/matotam-core/pkg/detrand"
)

// Archetype indices. Byte 0 of the pair hash selects one of these eight
// shape families; each family then narrows the numeric parameter ranges to
// keep its silhouette recognizable regardless of hash value.
const (
	SoftWave = iota
	HighWave
	Swirl
	TwinSwirl
	CrownWave
	LeafCurve
	MinimalArc
	DoubleArc
)

// ArchetypeNames maps archetype indices to display names.
var ArchetypeNames = [8]string{
	"Soft Wave", "High Wave", "Swirl", "Twin Swirl",
	"Crown Wave", "Leaf Curve", "Minimal Arc", "Double Arc",
}

// Params holds the derived ornament parameters.
type Params struct {
	ArchetypeIndex int
	Amplitude      float64
	Curvature      float64
	StrokeWidth    float64
	Spread         float64
	Layers         int
}

// PairKey canonicalizes two addresses into an order-independent key:
// trimmed, lexicographically sorted, joined with "::". Two empty addresses
// collapse to a fixed sentinel so the derivation never sees an empty seed.
func PairKey(a, b string) string {
	A := strings.TrimSpace(a)
	B := strings.TrimSpace(b)
	if A == "" && B == "" {
		return "pair::empty"
	}
	if A <= B {
		return A + "::" + B
	}
	return B + "::" + A
}

// ParamsFor derives ornament parameters for a sender/receiver pair plus the
// temporal indices from the rarity code. Swapping the addresses yields
// identical parameters.
func ParamsFor(addrA, addrB string, yearIndex, dayIndex int) Params {
	key := PairKey(addrA, addrB)
	bytes := detrand.Bytes(key, 8)

	archetype := int(bytes[0]) % 8

	amplitude := detrand.MapByte(bytes[1], 6, 14)
	curvature := detrand.MapByte(bytes[2], 0.30, 0.90)
	strokeWidth := detrand.MapByte(bytes[3], 1.0, 1.35)
	spread := detrand.MapByte(bytes[4], 90, 150)
	layers := int(bytes[5])%3 + 1

	// Archetype fine-tuning.
	switch archetype {
	case SoftWave:
		amplitude *= 0.85
		curvature = detrand.MapByte(bytes[2], 0.30, 0.50)
		layers = 1
	case HighWave:
		amplitude *= 1.20
		curvature = detrand.MapByte(bytes[2], 0.45, 0.75)
	case Swirl:
		curvature = detrand.MapByte(bytes[2], 0.55, 0.90)
	case TwinSwirl:
		curvature = detrand.MapByte(bytes[2], 0.60, 0.90)
		layers = 2 + int(bytes[5])%2
	case CrownWave:
		curvature = detrand.MapByte(bytes[2], 0.30, 0.50)
	case LeafCurve:
		curvature = detrand.MapByte(bytes[2], 0.40, 0.70)
	case MinimalArc:
		amplitude = detrand.MapByte(bytes[1], 4, 7)
		curvature = detrand.MapByte(bytes[2], 0.20, 0.35)
		layers = 1
		strokeWidth = detrand.MapByte(bytes[3], 1.00, 1.15)
	case DoubleArc:
		amplitude = detrand.MapByte(bytes[1], 6, 10)
		curvature = detrand.MapByte(bytes[2], 0.25, 0.45)
		layers = 2
	}

	// Day jitter: +-2% breathing, never enough to change the archetype.
	jitter := 1 + float64(dayIndex%5-2)*0.01
	amplitude *= jitter
	spread *= jitter

	return Params{
		ArchetypeIndex: archetype,
		Amplitude:      amplitude,
		Curvature:      curvature,
		StrokeWidth:    strokeWidth,
		Spread:         spread,
		Layers:         layers,
	}
}

// Paths holds the mirrored left/right SVG path data, one entry per layer.
type Paths struct {
	Left  []string
	Right []string
}

// BuildPaths constructs the SVG path data for both sides of the ornament
// row. Each layer repeats the archetype curve with a small vertical offset;
// the left side mirrors the right around centerX.
func BuildPaths(p Params, centerX, baselineY float64) Paths {
	const layerOffset = 4

	out := Paths{
		Left:  make([]string, 0, p.Layers),
		Right: make([]string, 0, p.Layers),
	}
	for i := 0; i < p.Layers; i++ {
		offset := float64(i * layerOffset)
		out.Left = append(out.Left, buildPath(p, -1, centerX, baselineY+offset))
		out.Right = append(out.Right, buildPath(p, 1, centerX, baselineY+offset))
	}
	return out
}

func buildPath(p Params, dir float64, centerX, y float64) string {
	startX := centerX + dir*40
	endX := centerX + dir*(40+p.Spread*0.50)
	midX1 := centerX + dir*(40+p.Spread*p.Curvature*0.30)
	midX2 := centerX + dir*(40+p.Spread*p.Curvature*0.80)

	up := y - p.Amplitude
	down := y + p.Amplitude*0.60

	switch p.ArchetypeIndex {
	case SoftWave:
		return "M " + num(startX) + " " + num(y) +
			" C " + num(midX1) + " " + num(up) + ", " + num(midX2) + " " + num(down) + ", " + num(endX) + " " + num(y)
	case HighWave:
		return "M " + num(startX) + " " + num(y) +
			" C " + num(midX1) + " " + num(up-p.Amplitude*0.20) + ", " + num(midX2) + " " + num(down+p.Amplitude*0.10) + ", " + num(endX) + " " + num(y)
	case Swirl:
		return "M " + num(startX) + " " + num(y) +
			" C " + num(midX1) + " " + num(up) + ", " + num(midX2) + " " + num(y) + ", " + num(endX-dir*p.Amplitude*0.60) + " " + num(y) +
			" S " + num(endX) + " " + num(y-p.Amplitude*0.40) + ", " + num(endX) + " " + num(y)
	case TwinSwirl:
		return "M " + num(startX) + " " + num(y) +
			" C " + num(midX1) + " " + num(up) + ", " + num(midX2) + " " + num(down) + ", " + num(endX-dir*p.Amplitude*0.80) + " " + num(y) +
			" S " + num(endX) + " " + num(y-p.Amplitude*0.60) + ", " + num(endX) + " " + num(y)
	case CrownWave:
		peakX := centerX + dir*(40+p.Spread*0.30)
		peakY := y - p.Amplitude*1.10
		return "M " + num(startX) + " " + num(y) +
			" C " + num(midX1) + " " + num(up) + ", " + num(peakX) + " " + num(peakY) + ", " + num(midX2) + " " + num(up) +
			" S " + num(endX) + " " + num(down) + ", " + num(endX) + " " + num(y)
	case LeafCurve:
		return "M " + num(startX) + " " + num(y) +
			" C " + num(midX1) + " " + num(up) + ", " + num(midX2) + " " + num(y) + ", " + num(endX-dir*p.Amplitude*0.40) + " " + num(y+p.Amplitude*0.20)
	case MinimalArc:
		return "M " + num(startX) + " " + num(y) +
			" Q " + num(midX2) + " " + num(up) + ", " + num(endX) + " " + num(y)
	case DoubleArc:
		return "M " + num(startX) + " " + num(y) +
			" Q " + num(midX1) + " " + num(up) + ", " + num(midX2) + " " + num(y) +
			" T " + num(endX) + " " + num(y)
	default:
		return "M " + num(startX) + " " + num(y) +
			" C " + num(midX1) + " " + num(up) + ", " + num(midX2) + " " + num(down) + ", " + num(endX) + " " + num(y)
	}
}

// num formats a coordinate with the shortest exact decimal representation,
// keeping path strings stable across runs.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
