package render

import (
	"math"
	"strings"
	"testing"
)

func TestFillFractionClampsAtFull(t *testing.T) {
	t.Parallel()
	if got := FillFraction(250, 200); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
	if got := FillFraction(200, 200); got != 1 {
		t.Fatalf("expected exactly 1 at target, got %v", got)
	}
}

func TestFillFractionClampsAtZero(t *testing.T) {
	t.Parallel()
	if got := FillFraction(0, 200); got != 0 {
		t.Fatalf("expected 0 at zero value, got %v", got)
	}
	if got := FillFraction(-5, 200); got != 0 {
		t.Fatalf("expected 0 for negative value, got %v", got)
	}
	if got := FillFraction(100, 0); got != 0 {
		t.Fatalf("expected 0 for zero target, got %v", got)
	}
}

func TestFillFractionMonotonic(t *testing.T) {
	t.Parallel()
	prev := -1.0
	for v := 0.0; v <= 300; v += 10 {
		f := FillFraction(v, 200)
		if f < prev {
			t.Fatalf("fill fraction decreased at value %v: %v < %v", v, f, prev)
		}
		prev = f
	}
}

func TestArcPointEndpoints(t *testing.T) {
	t.Parallel()
	x, y := ArcPoint(60, 60, 50, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-60) > 1e-9 {
		t.Fatalf("fraction 0 should sit at the left end, got (%v, %v)", x, y)
	}
	x, y = ArcPoint(60, 60, 50, 1)
	if math.Abs(x-110) > 1e-9 || math.Abs(y-60) > 1e-9 {
		t.Fatalf("fraction 1 should sit at the right end, got (%v, %v)", x, y)
	}
	x, y = ArcPoint(60, 60, 50, 0.5)
	if math.Abs(x-60) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Fatalf("fraction 0.5 should sit at the top, got (%v, %v)", x, y)
	}
}

func TestGaugeSVGOmitsFillArcWhenEmpty(t *testing.T) {
	t.Parallel()
	svg := GaugeSVG("Calories", 0, 2000)
	if got := strings.Count(svg, "<path"); got != 1 {
		t.Fatalf("expected only the track path, got %d paths", got)
	}
}

func TestGaugeBarWidth(t *testing.T) {
	t.Parallel()
	bar := GaugeBar("Calories", 100, 200, 20)
	if !strings.Contains(bar, strings.Repeat("#", 10)+strings.Repeat("-", 10)) {
		t.Fatalf("expected half-filled 20 char bar, got %q", bar)
	}
}
