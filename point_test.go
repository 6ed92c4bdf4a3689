package motion

import (
	"math"
	"testing"
)

func TestPointNonFinite(t *testing.T) {
	if Pt(0.25, 1).IsNaN() || Pt(0.25, 1).IsInf() {
		t.Errorf("finite point reported as non-finite")
	}
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Errorf("got IsNaN false for %v", Pt(math.NaN(), 0))
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Errorf("got IsInf false for %v", Pt(0, math.Inf(-1)))
	}
}
