package provider

import (
	"time"

	"TickerScope/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Price     float64
	Bars      []model.Bar
	SinceBars []model.Bar
	Err       error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchFull(_, period string) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(m.Price, periodDays(period), time.Now()), nil
}

func (m *MockProvider) FetchSince(_ string, start time.Time) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.SinceBars != nil {
		return m.SinceBars, nil
	}
	var out []model.Bar
	for _, b := range GenerateBars(m.Price, 30, time.Now()) {
		if !b.Date.Before(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func periodDays(period string) int {
	switch period {
	case "1d":
		return 1
	case "5d":
		return 5
	case "1mo":
		return 22
	case "3mo":
		return 66
	case "6mo":
		return 126
	case "2y":
		return 504
	case "5y":
		return 1260
	case "10y":
		return 2520
	default: // 1y, ytd, max all get a year of synthetic bars
		return 252
	}
}

// GenerateBars builds a deterministic daily series ending at end, one bar per
// calendar day, drifting gently around basePrice.
func GenerateBars(basePrice float64, count int, end time.Time) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   end.AddDate(0, 0, -(count - 1 - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
