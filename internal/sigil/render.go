package sigil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Render produces a standalone sigil SVG with a size×size viewBox. The
// output carries no element IDs, so it can also be inlined into a larger
// document without collisions.
func Render(p Params, size float64) string {
	cx := size / 2
	cy := size / 2
	radius := size * 0.42

	return fmt.Sprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %s %s\">\n%s\n%s\n</svg>",
		num(size), num(size),
		renderFrame(p.Frame, cx, cy, radius, p.Color),
		renderInterior(p.Interior, cx, cy, radius*0.7))
}

// Fragment renders the frame and interior without the svg wrapper, for
// embedding inside another vector document under a caller-supplied
// transform. Coordinates span 0..size.
func Fragment(p Params, size float64) string {
	cx := size / 2
	cy := size / 2
	radius := size * 0.42
	return renderFrame(p.Frame, cx, cy, radius, p.Color) + renderInterior(p.Interior, cx, cy, radius*0.7)
}

// polygonPoints builds the points attribute of a regular polygon.
func polygonPoints(cx, cy, radius float64, sides int, rotation float64) string {
	points := make([]string, 0, sides)
	step := math.Pi * 2 / float64(sides)
	for i := 0; i < sides; i++ {
		angle := rotation + float64(i)*step
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		points = append(points, fixed(x)+","+fixed(y))
	}
	return strings.Join(points, " ")
}

// gearPath builds a toothed wheel by alternating between two radii.
func gearPath(cx, cy, innerRadius, outerRadius float64, teeth int) string {
	step := math.Pi * 2 / float64(teeth*2)
	var b strings.Builder
	for i := 0; i < teeth*2; i++ {
		r := innerRadius
		if i%2 == 0 {
			r = outerRadius
		}
		angle := float64(i) * step
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString("L")
		}
		b.WriteString(fixed(x) + "," + fixed(y))
	}
	b.WriteString("Z")
	return b.String()
}

// scaleInto builds the transform that centers an authored path (with known
// bounding box center) into the seal at the given diameter.
func scaleInto(cx, cy, targetDiameter, originalMax, originalCenterX, originalCenterY float64) string {
	scale := targetDiameter / originalMax
	return fmt.Sprintf("translate(%s, %s) scale(%s) translate(-%s, -%s)",
		fixed(cx), fixed(cy), strconv.FormatFloat(scale, 'f', 4, 64), fixed(originalCenterX), fixed(originalCenterY))
}

func renderFrame(frame FrameOption, cx, cy, radius float64, color ColorOption) string {
	stroke := color.Stroke
	fill := color.Fill
	strokeWidth := radius * 0.12

	switch frame.ID {
	case "wax":
		originalMax := waxOriginalWidth
		if waxOriginalHeight > originalMax {
			originalMax = waxOriginalHeight
		}
		transform := scaleInto(cx, cy, radius*2*0.95, originalMax, waxOriginalCenterX, waxOriginalCenterY)
		return fmt.Sprintf("<path d=\"%s\" transform=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
			waxSealPath, transform, fill, stroke, fixed(strokeWidth))

	case "hexagon":
		return fmt.Sprintf("<polygon points=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
			polygonPoints(cx, cy, radius, 6, math.Pi/6), fill, stroke, fixed(strokeWidth))

	case "heptagon":
		return fmt.Sprintf("<polygon points=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
			polygonPoints(cx, cy, radius, 7, 0), fill, stroke, fixed(strokeWidth))

	case "octagon":
		return fmt.Sprintf("<polygon points=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
			polygonPoints(cx, cy, radius, 8, 0), fill, stroke, fixed(strokeWidth))

	case "nonagon":
		return fmt.Sprintf("<polygon points=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
			polygonPoints(cx, cy, radius, 9, 0), fill, stroke, fixed(strokeWidth))

	case "circle":
		return fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx), num(cy), num(radius), fill, stroke, fixed(strokeWidth))

	case "broken_circle":
		// Dashed outline leaves a gap on top; the inner disc keeps the
		// seal body solid.
		ring := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" stroke-dasharray=\"%s\" stroke-dashoffset=\"%s\" />",
			num(cx), num(cy), num(radius), stroke, fixed(strokeWidth),
			fixed(math.Pi*radius*1.4), fixed(math.Pi*radius*0.5))
		disc := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" stroke=\"none\" />",
			num(cx), num(cy), num(radius*0.82), fill)
		return ring + disc

	case "trapezoid":
		return trapezoidPath(cx, cy, radius*1.4, radius*2, radius*1.6, fill, stroke, strokeWidth)

	case "inverted_trapezoid":
		return trapezoidPath(cx, cy, radius*2, radius*1.4, radius*1.6, fill, stroke, strokeWidth)

	case "gear":
		return fmt.Sprintf("<path d=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
			gearPath(cx, cy, radius*0.7, radius, 8), fill, stroke, fixed(strokeWidth))

	case "crescent":
		big := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" opacity=\"1\" />",
			num(cx), num(cy), num(radius), fill)
		small := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"black\" opacity=\"0.7\" />",
			num(cx+radius*0.4), num(cy-radius*0.1), num(radius*0.8))
		return big + small

	case "double_arc":
		r2 := radius * 0.8
		base := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" />",
			num(cx), num(cy), num(radius*0.75), fill)
		arc1 := fmt.Sprintf("<path d=\"M %s,%s A %s,%s 0 0 1 %s,%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx-radius), num(cy), num(radius), num(radius), num(cx+radius), num(cy), stroke, fixed(strokeWidth))
		arc2 := fmt.Sprintf("<path d=\"M %s,%s A %s,%s 0 0 0 %s,%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx-r2), num(cy+r2*0.4), num(r2), num(r2), num(cx+r2), num(cy+r2*0.4), stroke, fixed(strokeWidth*0.8))
		return base + arc1 + arc2

	default:
		// Unknown frame ids never fail; fall back to a plain circle.
		return fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx), num(cy), num(radius), fill, stroke, fixed(strokeWidth))
	}
}

func trapezoidPath(cx, cy, wTop, wBottom, h float64, fill, stroke string, strokeWidth float64) string {
	x1 := cx - wTop/2
	x2 := cx + wTop/2
	x3 := cx + wBottom/2
	x4 := cx - wBottom/2
	yTop := cy - h/2
	yBottom := cy + h/2
	d := fmt.Sprintf("M %s,%s L %s,%s L %s,%s L %s,%s Z",
		num(x1), num(yTop), num(x2), num(yTop), num(x3), num(yBottom), num(x4), num(yBottom))
	return fmt.Sprintf("<path d=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\" />",
		d, fill, stroke, fixed(strokeWidth))
}

// interiorStroke is the fixed dark ink for interior glyphs, chosen to stand
// out on every seal color.
const interiorStroke = "#020617"

func renderInterior(interior InteriorOption, cx, cy, radius float64) string {
	stroke := interiorStroke
	strokeWidth := radius * 0.12
	rInner := radius * 0.6

	switch interior.ID {
	case "royal_crown":
		transform := scaleInto(cx, cy, rInner*3.0, crownOriginalWidth, crownOriginalCenterX, crownOriginalCenterY)
		return fmt.Sprintf("<path d=\"%s\" transform=\"%s\" fill=\"%s\" />", crownPath, transform, stroke)

	case "scroll":
		transform := scaleInto(cx, cy, rInner*2.8, scrollOriginalWidth, scrollOriginalCenterX, scrollOriginalCenterY)
		return fmt.Sprintf("<path d=\"%s\" transform=\"%s\" fill=\"%s\" />", scrollPath, transform, stroke)

	case "quill":
		transform := scaleInto(cx, cy, rInner*2.4, quillOriginalWidth, quillOriginalCenterX, quillOriginalCenterY)
		return fmt.Sprintf("<path d=\"%s\" transform=\"%s\" fill=\"%s\" />", quillPath, transform, stroke)

	case "swirl_core":
		transform := scaleInto(cx, cy, rInner*3.4, leafOriginalWidth, leafOriginalCenterX, leafOriginalCenterY)
		return fmt.Sprintf("<path d=\"%s\" transform=\"%s\" fill=\"%s\" />", leafPath, transform, stroke)

	case "triad_triskelion":
		transform := scaleInto(cx, cy, rInner*3.2, torchOriginalWidth, torchOriginalCenterX, torchOriginalCenterY)
		return fmt.Sprintf("<path d=\"%s\" transform=\"%s\" fill=\"%s\" />", torchPath, transform, stroke)

	case "radiant_burst":
		var b strings.Builder
		const count = 12
		r0 := rInner * 0.25
		r1 := rInner
		step := math.Pi * 2 / count

		b.WriteString(fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.28), stroke, fixed(strokeWidth*0.9)))

		for i := 0; i < count; i++ {
			angle := float64(i) * step
			start, end := r0, r1*0.8
			if i%2 == 0 {
				start, end = r0*0.7, r1
			}
			b.WriteString(fmt.Sprintf("<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\" stroke-linecap=\"round\" />",
				fixed(cx+start*math.Cos(angle)), fixed(cy+start*math.Sin(angle)),
				fixed(cx+end*math.Cos(angle)), fixed(cy+end*math.Sin(angle)),
				stroke, fixed(strokeWidth*0.9)))
		}
		return b.String()

	case "concentric_rings":
		sw := strokeWidth * 0.85
		ring := func(r float64) string {
			return fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" />",
				num(cx), num(cy), fixed(r), stroke, fixed(sw))
		}
		core := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.35*0.5), stroke)
		return ring(rInner*0.9) + ring(rInner*0.6) + ring(rInner*0.35) + core

	case "crossed_sigils":
		r := rInner * 0.95
		line := func(x1, y1, x2, y2, sw float64) string {
			return fmt.Sprintf("<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\" stroke-linecap=\"round\" />",
				num(x1), num(y1), num(x2), num(y2), stroke, fixed(sw))
		}
		core := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.2), stroke)
		return line(cx-r, cy-r, cx+r, cy+r, strokeWidth) +
			line(cx+r, cy-r, cx-r, cy+r, strokeWidth) +
			line(cx, cy-r, cx, cy+r, strokeWidth*0.75) +
			core

	case "orb_halo":
		sw := strokeWidth * 0.9
		haloOuter := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.95), stroke, fixed(sw*0.8))
		haloInner := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.7), stroke, fixed(sw))
		orb := fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.26), stroke)
		return haloOuter + haloInner + orb

	case "glyph_matrix":
		var b strings.Builder
		const grid = 3
		step := rInner * 1.2 / (grid - 1)
		startX := cx - step*(grid-1)/2
		startY := cy - step*(grid-1)/2
		rDot := rInner * 0.08

		for i := 0; i < grid; i++ {
			for j := 0; j < grid; j++ {
				b.WriteString(fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" />",
					fixed(startX+float64(i)*step), fixed(startY+float64(j)*step), fixed(rDot), stroke))
			}
		}
		b.WriteString(fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.15), stroke, fixed(strokeWidth*0.8)))
		return b.String()

	case "spiral_tri_loop":
		var b strings.Builder
		baseAngle := math.Pi * 2 / 3
		r0 := rInner * 0.25
		r1 := rInner * 0.9

		b.WriteString(fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.18), stroke))
		for i := 0; i < 3; i++ {
			angle := float64(i) * baseAngle
			x0 := cx + r0*math.Cos(angle)
			y0 := cy + r0*math.Sin(angle)
			x1 := cx + r1*math.Cos(angle+0.7)
			y1 := cy + r1*math.Sin(angle+0.7)
			b.WriteString(fmt.Sprintf("<path d=\"M %s,%s Q %s,%s %s,%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" stroke-linecap=\"round\" />",
				num(x0), num(y0), num(cx), num(cy), num(x1), num(y1), stroke, fixed(strokeWidth)))
		}
		return b.String()

	case "broken_rays":
		var b strings.Builder
		const count = 8
		rStart := rInner * 0.2
		rMid := rInner * 0.55
		rEnd := rInner
		step := math.Pi * 2 / count

		b.WriteString(fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" />",
			num(cx), num(cy), fixed(rInner*0.22), stroke))
		for i := 0; i < count; i++ {
			angle := float64(i) * step
			b.WriteString(fmt.Sprintf("<path d=\"M %s,%s L %s,%s L %s,%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" stroke-linecap=\"round\" />",
				num(cx+rStart*math.Cos(angle)), num(cy+rStart*math.Sin(angle)),
				num(cx+rMid*math.Cos(angle+0.1)), num(cy+rMid*math.Sin(angle+0.1)),
				num(cx+rEnd*math.Cos(angle+0.35)), num(cy+rEnd*math.Sin(angle+0.35)),
				stroke, fixed(strokeWidth)))
		}
		return b.String()

	default:
		// Unknown interior ids fall back to a plain circle outline.
		return fmt.Sprintf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\" />",
			num(cx), num(cy), num(rInner), stroke, fixed(strokeWidth))
	}
}

// fixed formats with two decimal places, matching authored stroke metrics.
func fixed(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// num formats with the shortest exact decimal representation.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
