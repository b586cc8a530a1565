package render

import (
	"fmt"
	"math"
	"strings"
)

// FillFraction is the filled portion of a gauge: value/target clamped to
// [0, 1]. A non-positive target renders an empty gauge.
func FillFraction(value, target float64) float64 {
	if target <= 0 || value <= 0 {
		return 0
	}
	f := value / target
	if f > 1 {
		return 1
	}
	return f
}

// ArcPoint returns the point on a semicircle of the given radius around
// (cx, cy) for a fill fraction. Fraction 0 sits at the left end of the
// arc, fraction 1 at the right.
func ArcPoint(cx, cy, radius, fraction float64) (x, y float64) {
	angle := math.Pi - fraction*math.Pi
	return cx + radius*math.Cos(angle), cy - radius*math.Sin(angle)
}

// ArcPath builds the SVG path for the filled part of a semicircular
// gauge arc.
func ArcPath(cx, cy, radius, fraction float64) string {
	startX, startY := ArcPoint(cx, cy, radius, 0)
	endX, endY := ArcPoint(cx, cy, radius, fraction)
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f",
		startX, startY, radius, radius, endX, endY)
}

// GaugeSVG renders a complete standalone gauge: a grey track, the filled
// arc, and the value/target label.
func GaugeSVG(label string, value, target float64) string {
	const (
		cx, cy, r = 60.0, 60.0, 50.0
	)
	frac := FillFraction(value, target)
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120 75">`)
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="#d0d0d0" stroke-width="10"/>`, ArcPath(cx, cy, r, 1))
	if frac > 0 {
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="#4caf50" stroke-width="10"/>`, ArcPath(cx, cy, r, frac))
	}
	fmt.Fprintf(&b, `<text x="60" y="58" text-anchor="middle" font-size="14">%.0f/%.0f</text>`, value, target)
	fmt.Fprintf(&b, `<text x="60" y="72" text-anchor="middle" font-size="8">%s</text>`, label)
	b.WriteString(`</svg>`)
	return b.String()
}

// GaugeBar is the terminal rendition of the same gauge.
func GaugeBar(label string, value, target float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(math.Round(FillFraction(value, target) * float64(width)))
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("%-10s [%s] %.0f/%.0f", label, bar, value, target)
}
