package collector

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"StockPilot/internal/model"
)

// PiquetteFetcher implements Fetcher using the piquette/finance-go client.
// The chart API there takes an explicit start/end window, so the period
// string is translated into a start time before the call.
type PiquetteFetcher struct{}

// NewPiquetteFetcher creates a finance-go backed fetcher.
func NewPiquetteFetcher() *PiquetteFetcher { return &PiquetteFetcher{} }

func (f *PiquetteFetcher) Name() string { return "piquette" }

func (f *PiquetteFetcher) FetchHistory(symbol, period, interval string) (*model.PriceSeries, error) {
	now := time.Now()
	start, err := periodStart(now, period)
	if err != nil {
		return nil, err
	}

	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Interval: datetime.Interval(interval),
	})

	series := &model.PriceSeries{
		Symbol:    symbol,
		Period:    period,
		Interval:  interval,
		FetchedAt: now,
	}
	for iter.Next() {
		b := iter.Bar()
		o, _ := b.Open.Float64()
		h, _ := b.High.Float64()
		l, _ := b.Low.Float64()
		c, _ := b.Close.Float64()
		series.Bars = append(series.Bars, model.OHLCV{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("finance-go fetch %s: %w", symbol, err)
	}
	return series, nil
}

// periodStart converts a Yahoo-style period string into the window start time.
func periodStart(now time.Time, period string) (time.Time, error) {
	switch period {
	case "1d":
		return now.AddDate(0, 0, -1), nil
	case "5d":
		return now.AddDate(0, 0, -5), nil
	case "1mo":
		return now.AddDate(0, -1, 0), nil
	case "3mo":
		return now.AddDate(0, -3, 0), nil
	case "6mo":
		return now.AddDate(0, -6, 0), nil
	case "1y":
		return now.AddDate(-1, 0, 0), nil
	case "2y":
		return now.AddDate(-2, 0, 0), nil
	case "5y":
		return now.AddDate(-5, 0, 0), nil
	case "10y":
		return now.AddDate(-10, 0, 0), nil
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	case "max":
		return now.AddDate(-50, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported period %q", period)
	}
}
