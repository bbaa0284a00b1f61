// Package bubble composes the self-contained speech-bubble SVG embedded in
// every message NFT: wrapped message text inside a rounded bubble, the
// mirrored ornament row with the rarity code beneath it, and optionally the
// sender's sigil below that.
//
// Everything here is a pure generator. Output is byte-identical for
// identical inputs, which is what lets the live preview and the on-chain
// artifact match exactly. Size enforcement belongs to the metadata layer.
package bubble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matotam-io/matotam-core/internal/ornament"
)

// Wrapping defaults. Messages are stored in full in the metadata; the
// bubble shows at most MaxLines lines and silently stops, so visual
// truncation loses nothing.
const (
	MaxLineLength = 42
	MaxLines      = 10

	maxWrapInput = 256
)

// Wrap splits a message into display lines by greedy word fill. Words
// longer than the line limit are hard-cut; input beyond 256 runes is
// ignored.
func Wrap(text string, maxLineLength, maxLines int) []string {
	runes := []rune(text)
	if len(runes) > maxWrapInput {
		runes = runes[:maxWrapInput]
	}
	trimmed := strings.TrimSpace(string(runes))
	if trimmed == "" {
		return nil
	}

	words := strings.Fields(trimmed)
	var lines []string
	current := ""

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if len([]rune(candidate)) <= maxLineLength {
			current = candidate
		} else {
			if current != "" {
				lines = append(lines, current)
				if len(lines) >= maxLines {
					return lines
				}
			}
			if wr := []rune(word); len(wr) > maxLineLength {
				current = string(wr[:maxLineLength])
			} else {
				current = word
			}
		}
		if len(lines) >= maxLines {
			break
		}
	}

	if current != "" && len(lines) < maxLines {
		lines = append(lines, current)
	}
	return lines
}

// Layout constants for the 600-wide canvas.
const (
	lineHeight  = 28.0
	bubbleX     = 40.0
	bubbleY     = 40.0
	bubbleWidth = 520.0
	canvasWidth = 600.0
	centerX     = 300.0
	sigilSize   = 64.0
)

// BuildSVG assembles the full vector document: bubble with tail, centered
// text lines, mirrored ornament paths with the rarity code between them,
// and, when sigilFragment is non-empty, the sigil inlined beneath the
// ornament row. Canvas height grows with content.
func BuildSVG(lines []string, rarityCode string, params ornament.Params, sigilFragment string) string {
	safeLines := lines
	if len(safeLines) == 0 {
		safeLines = []string{"(empty message)"}
	}

	bubbleHeight := float64(len(safeLines))*lineHeight + 80
	if bubbleHeight < 200 {
		bubbleHeight = 200
	}

	centerY := bubbleY + bubbleHeight/2
	textBlockHeight := float64(len(safeLines)-1) * lineHeight
	startY := centerY - textBlockHeight/2

	var texts strings.Builder
	for i, line := range safeLines {
		y := startY + float64(i)*lineHeight
		texts.WriteString(fmt.Sprintf(`
  <text x="50%%" y="%s" text-anchor="middle" fill="#e5e7eb" font-size="22" font-family="system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif">%s</text>`,
			num(y), escapeText(line)))
	}

	arrowY := bubbleY + bubbleHeight
	ornamentBaselineY := arrowY + 56
	svgHeight := ornamentBaselineY + 70

	sigilBlock := ""
	if sigilFragment != "" {
		sigilY := ornamentBaselineY + 40
		sigilBlock = fmt.Sprintf("\n  <g transform=\"translate(%s, %s)\">%s</g>",
			num(centerX-sigilSize/2), num(sigilY), sigilFragment)
		svgHeight = sigilY + sigilSize + 20
	}

	paths := ornament.BuildPaths(params, centerX, ornamentBaselineY)
	var ornaments strings.Builder
	for _, d := range paths.Left {
		ornaments.WriteString("\n    <path d=\"" + d + "\" />")
	}
	for _, d := range paths.Right {
		ornaments.WriteString("\n    <path d=\"" + d + "\" />")
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">
  <rect width="100%%" height="100%%" fill="#020617" />
  <path d="%s" fill="#0b1120" stroke="#0ea5e9" stroke-width="4" stroke-linejoin="round" />%s
  <g stroke="#0ea5e9" stroke-width="%s" fill="none" stroke-linecap="round" stroke-linejoin="round">%s
    <text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" fill="#0ea5e9" font-size="18" font-family="system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif" stroke="none">%s</text>
  </g>%s
</svg>`,
		num(canvasWidth), num(svgHeight), num(canvasWidth), num(svgHeight),
		bubblePath(bubbleHeight),
		texts.String(),
		fixed(params.StrokeWidth),
		ornaments.String(),
		num(centerX), num(ornamentBaselineY),
		escapeText(rarityCode),
		sigilBlock)
}

// bubblePath draws the bubble body and its tail as one closed path with
// rounded corners.
func bubblePath(bubbleHeight float64) string {
	bx := bubbleX
	by := bubbleY
	bw := bubbleWidth
	ay := by + bubbleHeight
	cx := centerX

	segments := []string{
		fmt.Sprintf("M %s %s", num(bx+40), num(by)),
		fmt.Sprintf("H %s", num(bx+bw-40)),
		fmt.Sprintf("Q %s %s %s %s", num(bx+bw), num(by), num(bx+bw), num(by+40)),
		fmt.Sprintf("V %s", num(ay-40)),
		fmt.Sprintf("Q %s %s %s %s", num(bx+bw), num(ay), num(bx+bw-40), num(ay)),
		fmt.Sprintf("H %s", num(cx+32)),
		fmt.Sprintf("L %s %s", num(cx), num(ay+38)),
		fmt.Sprintf("L %s %s", num(cx-32), num(ay)),
		fmt.Sprintf("H %s", num(bx+40)),
		fmt.Sprintf("Q %s %s %s %s", num(bx), num(ay), num(bx), num(ay-40)),
		fmt.Sprintf("V %s", num(by+40)),
		fmt.Sprintf("Q %s %s %s %s", num(bx), num(by), num(bx+40), num(by)),
		"Z",
	}
	return strings.Join(segments, " ")
}

// DataURI percent-encodes an SVG document into a data: URI usable directly
// as an image source. Both quote characters are escaped so the URI can sit
// inside either attribute quoting style downstream.
func DataURI(svg string) string {
	return "data:image/svg+xml," + percentEncode(svg)
}

// percentEncode mirrors JavaScript's encodeURIComponent, with the single
// quote additionally escaped.
func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '!' || c == '~' || c == '*' || c == '(' || c == ')':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func fixed(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
