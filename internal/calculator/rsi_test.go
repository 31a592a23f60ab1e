package calculator

import (
	"math"
	"testing"
)

func TestRSISeries_Warmup(t *testing.T) {
	prices := []float64{44, 44.5, 45, 44.8, 45.2, 45.5, 45.3, 45.6, 46, 45.8,
		46.2, 46.5, 46.3, 46.8, 47}
	got, err := RSISeries(prices, 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	for i := 0; i < 14; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("rsi[%d] = %v, want NaN during warmup", i, got[i])
		}
	}
	if math.IsNaN(got[14]) {
		t.Error("expected defined rsi once a full period of changes exists")
	}
}

func TestRSISeries_AllGains(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	got, err := RSISeries(prices, 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	if !approx(got[len(got)-1], 100) {
		t.Errorf("monotone gains should give RSI 100, got %v", got[len(got)-1])
	}
}

func TestRSISeries_KnownValues(t *testing.T) {
	// period 2: changes +1, +1, -1. Initial averages gain=1, loss=0 -> 100.
	// Next step: gain (1*1+0)/2 = 0.5, loss (0*1+1)/2 = 0.5 -> RS=1 -> 50.
	got, err := RSISeries([]float64{1, 2, 3, 2}, 2)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	if !approx(got[2], 100) {
		t.Errorf("rsi[2] = %v, want 100", got[2])
	}
	if !approx(got[3], 50) {
		t.Errorf("rsi[3] = %v, want 50", got[3])
	}
}

func TestRSISeries_TooShort(t *testing.T) {
	got, err := RSISeries([]float64{1, 2, 3}, 14)
	if err != nil {
		t.Fatalf("rsi: %v", err)
	}
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("rsi[%d] = %v, want NaN for short series", i, v)
		}
	}
}

func TestRSISeries_BadPeriod(t *testing.T) {
	if _, err := RSISeries([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for zero period")
	}
}
