package sigil

// ColorOption is a seal color with its rarity weight and palette.
type ColorOption struct {
	ID          string
	Label       string
	Probability float64
	Fill        string
	Stroke      string
}

// Weight implements rarity.Weighted.
func (o ColorOption) Weight() float64 { return o.Probability }

// InteriorOption is an interior glyph with its rarity weight.
type InteriorOption struct {
	ID          string
	Label       string
	Probability float64
}

// Weight implements rarity.Weighted.
func (o InteriorOption) Weight() float64 { return o.Probability }

// FrameOption is a frame shape with its rarity weight.
type FrameOption struct {
	ID          string
	Label       string
	Probability float64
}

// Weight implements rarity.Weighted.
func (o FrameOption) Weight() float64 { return o.Probability }

// Rarity tables. Each group sums to 1.0: one legendary option at 1%, two
// epic at 4.5%, and nine commons at 10%. Table order matters: the picker
// scans cumulatively, so reordering entries changes every derived sigil.

// Colors holds the seal color table (background + accent).
var Colors = []ColorOption{
	{ID: "gold", Label: "Gold", Probability: 0.01, Fill: "#facc15", Stroke: "#fbbf24"},
	{ID: "royal_purple", Label: "Royal purple", Probability: 0.045, Fill: "#7c3aed", Stroke: "#a855f7"},
	{ID: "silver", Label: "Silver", Probability: 0.045, Fill: "#e5e7eb", Stroke: "#9ca3af"},
	{ID: "light_blue", Label: "Light blue", Probability: 0.1, Fill: "#38bdf8", Stroke: "#0ea5e9"},
	{ID: "red", Label: "Red", Probability: 0.1, Fill: "#f97373", Stroke: "#ef4444"},
	{ID: "light_green", Label: "Light green", Probability: 0.1, Fill: "#4ade80", Stroke: "#22c55e"},
	{ID: "lavender", Label: "Lavender", Probability: 0.1, Fill: "#c7a0ff", Stroke: "#7b4bcc"},
	{ID: "brown", Label: "Brown", Probability: 0.1, Fill: "#92400e", Stroke: "#b45309"},
	{ID: "gray", Label: "Gray", Probability: 0.1, Fill: "#6b7280", Stroke: "#9ca3af"},
	{ID: "orange", Label: "Orange", Probability: 0.1, Fill: "#fb923c", Stroke: "#f97316"},
	{ID: "dark_blue", Label: "Dark blue", Probability: 0.1, Fill: "#1d4ed8", Stroke: "#3b82f6"},
	{ID: "olive_green", Label: "Olive green", Probability: 0.1, Fill: "#4d7c0f", Stroke: "#65a30d"},
}

// Interiors holds the interior glyph table.
var Interiors = []InteriorOption{
	{ID: "royal_crown", Label: "Royal crown", Probability: 0.01},
	{ID: "scroll", Label: "Scroll", Probability: 0.045},
	{ID: "quill", Label: "Quill", Probability: 0.045},
	{ID: "radiant_burst", Label: "Radiant burst", Probability: 0.1},
	{ID: "swirl_core", Label: "Sealed leaf", Probability: 0.1},
	{ID: "triad_triskelion", Label: "Torch", Probability: 0.1},
	{ID: "concentric_rings", Label: "Concentric rings", Probability: 0.1},
	{ID: "crossed_sigils", Label: "Crossed sigils", Probability: 0.1},
	{ID: "orb_halo", Label: "Orb & halo", Probability: 0.1},
	{ID: "glyph_matrix", Label: "Glyph matrix", Probability: 0.1},
	{ID: "spiral_tri_loop", Label: "Spiral tri-loop", Probability: 0.1},
	{ID: "broken_rays", Label: "Broken rays", Probability: 0.1},
}

// Frames holds the frame shape table.
var Frames = []FrameOption{
	{ID: "wax", Label: "Wax blob", Probability: 0.01},
	{ID: "hexagon", Label: "Hexagon", Probability: 0.045},
	{ID: "heptagon", Label: "Heptagon", Probability: 0.045},
	{ID: "octagon", Label: "Octagon", Probability: 0.1},
	{ID: "nonagon", Label: "Nonagon", Probability: 0.1},
	{ID: "circle", Label: "Circle", Probability: 0.1},
	{ID: "broken_circle", Label: "Broken circle", Probability: 0.1},
	{ID: "trapezoid", Label: "Trapezoid (short top)", Probability: 0.1},
	{ID: "inverted_trapezoid", Label: "Inverted trapezoid", Probability: 0.1},
	{ID: "gear", Label: "Gear", Probability: 0.1},
	{ID: "crescent", Label: "Crescent frame", Probability: 0.1},
	{ID: "double_arc", Label: "Double arc", Probability: 0.1},
}
