package calculator

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSMASeries(t *testing.T) {
	got, err := SMASeries([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("sma: %v", err)
	}
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Error("expected NaN during warmup")
	}
	for i, want := range []float64{2, 3, 4} {
		if !approx(got[i+2], want) {
			t.Errorf("sma[%d] = %v, want %v", i+2, got[i+2], want)
		}
	}
}

func TestSMASeries_InsufficientHistory(t *testing.T) {
	got, err := SMASeries([]float64{1, 2, 3}, 10)
	if err != nil {
		t.Fatalf("sma: %v", err)
	}
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("sma[%d] = %v, want NaN for short series", i, v)
		}
	}
}

func TestSMASeries_BadWindow(t *testing.T) {
	if _, err := SMASeries([]float64{1}, 0); err == nil {
		t.Error("expected error for zero window")
	}
	if _, err := SMASeries([]float64{1}, -3); err == nil {
		t.Error("expected error for negative window")
	}
}

func TestEMASeries(t *testing.T) {
	// span 3 gives alpha 0.5, so the recursion is easy to follow by hand.
	got, err := EMASeries([]float64{2, 4, 8}, 3)
	if err != nil {
		t.Fatalf("ema: %v", err)
	}
	for i, want := range []float64{2, 3, 5.5} {
		if !approx(got[i], want) {
			t.Errorf("ema[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestEMASeries_DefinedFromFirstBar(t *testing.T) {
	got, err := EMASeries([]float64{7}, 21)
	if err != nil {
		t.Fatalf("ema: %v", err)
	}
	if len(got) != 1 || !approx(got[0], 7) {
		t.Errorf("single-bar ema = %v, want [7]", got)
	}
}

func TestEMASeries_Empty(t *testing.T) {
	got, err := EMASeries(nil, 8)
	if err != nil {
		t.Fatalf("ema: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}
