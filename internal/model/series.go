package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the historical bars fetched for one ticker over a
// period/interval. It is never mutated after the fetch returns it.
type PriceSeries struct {
	Symbol    string
	Period    string
	Interval  string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Empty reports whether the provider returned no rows for this series.
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Bars) == 0
}
