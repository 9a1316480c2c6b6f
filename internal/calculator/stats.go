package calculator

import (
	"errors"
	"math"

	"StockPilot/internal/model"
)

// ClosingStats summarizes the closing-price column of a series.
type ClosingStats struct {
	Min  float64
	Max  float64
	Mean float64
}

// CalculateClosingStats scans all bars and returns min, max, and mean of the
// closing prices.
func CalculateClosingStats(bars []model.OHLCV) (ClosingStats, error) {
	if len(bars) == 0 {
		return ClosingStats{}, errors.New("no bars provided")
	}
	min := math.Inf(1)
	max := math.Inf(-1)
	sum := 0.0
	for _, b := range bars {
		if b.Close < min {
			min = b.Close
		}
		if b.Close > max {
			max = b.Close
		}
		sum += b.Close
	}
	return ClosingStats{
		Min:  min,
		Max:  max,
		Mean: sum / float64(len(bars)),
	}, nil
}
