package units

import (
	"math"
	"testing"
)

func TestWeightRoundTrip(t *testing.T) {
	t.Parallel()
	for _, kg := range []float64{50, 72.5, 80, 103.4, 120.1} {
		back := Round1(LbToKg(KgToLb(kg)))
		if math.Abs(back-Round1(kg)) > 0.05 {
			t.Fatalf("weight round trip drifted: %v -> %v", kg, back)
		}
	}
}

func TestHeightRoundTrip(t *testing.T) {
	t.Parallel()
	for _, cm := range []float64{150, 167.6, 180, 193.2} {
		back := Round1(InToCm(CmToIn(cm)))
		if math.Abs(back-Round1(cm)) > 0.05 {
			t.Fatalf("height round trip drifted: %v -> %v", cm, back)
		}
	}
}

func TestDisplayWeightImperial(t *testing.T) {
	t.Parallel()
	v, unit := DisplayWeight(80, true)
	if unit != "lb" {
		t.Fatalf("expected lb, got %q", unit)
	}
	if v != 176.4 {
		t.Fatalf("expected 176.4 lb, got %v", v)
	}
}

func TestDisplayHeightMetricKeepsValue(t *testing.T) {
	t.Parallel()
	v, unit := DisplayHeight(180, false)
	if unit != "cm" || v != 180 {
		t.Fatalf("expected 180 cm, got %v %s", v, unit)
	}
}

func TestInputConversionsOnlyApplyWhenImperial(t *testing.T) {
	t.Parallel()
	if got := InputWeightKg(80, false); got != 80 {
		t.Fatalf("metric weight input changed: %v", got)
	}
	if got := Round1(InputWeightKg(176.4, true)); got != 80 {
		t.Fatalf("imperial weight input: expected 80 kg, got %v", got)
	}
	if got := Round1(InputHeightCm(70.9, true)); got != 180.1 {
		t.Fatalf("imperial height input: expected 180.1 cm, got %v", got)
	}
}
