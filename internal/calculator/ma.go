package calculator

import (
	"errors"
	"math"
)

// SMASeries computes the simple moving average over the given window for
// every position in prices. Positions with fewer than window bars of history
// hold NaN.
func SMASeries(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]float64, len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// EMASeries computes the exponential moving average with smoothing
// alpha = 2/(span+1), seeded from the first price. Every position is defined
// as long as the series is non-empty.
func EMASeries(prices []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(prices))
	if len(prices) == 0 {
		return out, nil
	}
	alpha := 2.0 / float64(span+1)
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = alpha*prices[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
