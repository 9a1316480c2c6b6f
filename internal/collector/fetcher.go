package collector

import (
	"time"

	"StockPilot/internal/model"
)

// Fetcher defines the interface for fetching historical market data.
// Period and interval are provider-defined strings (e.g. "1mo", "1d") and
// are passed through unvalidated. A provider that returns zero rows yields
// an empty PriceSeries, not an error.
type Fetcher interface {
	FetchHistory(symbol, period, interval string) (*model.PriceSeries, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string]*model.PriceSeries // per-symbol canned data
	Price  float64                       // base price for generated bars
	Bars   int                           // generated bar count, default 22
	Err    error                         // forced fetch error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(symbol, period, interval string) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	count := m.Bars
	if count <= 0 {
		count = 22
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Period:    period,
		Interval:  interval,
		Bars:      generateMockBars(m.Price, count),
		FetchedAt: time.Now(),
	}, nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
