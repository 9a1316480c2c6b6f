package agent

import (
	"fmt"
	"log"
	"strings"

	"StockPilot/internal/calculator"
	"StockPilot/internal/chart"
	"StockPilot/internal/collector"
)

const helpText = "Available commands:\n" +
	"  get [TICKER] [PERIOD] [INTERVAL]  - Fetch and plot stock data. (Defaults: PERIOD=1mo, INTERVAL=1d)\n" +
	"  stats [TICKER] [PERIOD] [INTERVAL] - Show basic statistics for the stock. (Defaults: PERIOD=1mo, INTERVAL=1d)\n" +
	"  compare [TICKER1] [TICKER2] ...    - Compare multiple stocks on a single chart. (Defaults: PERIOD=1mo, INTERVAL=1d)\n" +
	"  exit                             - Quit the application.\n" +
	"  help                             - Show this help message."

// Agent dispatches one command line to the fetcher, calculator, and renderer.
// It holds no state between calls; every fetch is fresh and discarded.
type Agent struct {
	Fetcher         collector.Fetcher
	Renderer        chart.Renderer
	DefaultPeriod   string
	DefaultInterval string
}

// NewAgent creates an Agent. Empty defaults fall back to "1mo"/"1d".
func NewAgent(f collector.Fetcher, r chart.Renderer, defaultPeriod, defaultInterval string) *Agent {
	if defaultPeriod == "" {
		defaultPeriod = "1mo"
	}
	if defaultInterval == "" {
		defaultInterval = "1d"
	}
	return &Agent{
		Fetcher:         f,
		Renderer:        r,
		DefaultPeriod:   defaultPeriod,
		DefaultInterval: defaultInterval,
	}
}

// Handle parses a command line and returns the result text. All failures,
// including provider errors, come back as text; Handle never panics the loop.
func (a *Agent) Handle(line string) string {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "Empty command. Use 'help' to see available commands."
	}

	switch strings.ToLower(parts[0]) {
	case "help":
		return helpText
	case "get":
		return a.handleGet(parts[1:])
	case "stats":
		return a.handleStats(parts[1:])
	case "compare":
		return a.handleCompare(parts[1:])
	default:
		return "Unknown command. Use 'help' to see available commands."
	}
}

// periodInterval applies positional defaults: args[1] is the period and
// args[2] the interval when present.
func (a *Agent) periodInterval(args []string) (string, string) {
	period := a.DefaultPeriod
	interval := a.DefaultInterval
	if len(args) >= 2 {
		period = args[1]
	}
	if len(args) >= 3 {
		interval = args[2]
	}
	return period, interval
}

func (a *Agent) handleGet(args []string) string {
	if len(args) < 1 {
		return "Invalid command. Use: get [TICKER] [PERIOD] [INTERVAL]"
	}
	ticker := strings.ToUpper(args[0])
	period, interval := a.periodInterval(args)

	series, err := a.Fetcher.FetchHistory(ticker, period, interval)
	if err != nil {
		return fmt.Sprintf("Error fetching data for %s: %v", ticker, err)
	}
	if series.Empty() {
		return fmt.Sprintf("No data found for ticker %s.", ticker)
	}

	err = a.Renderer.Render(chart.Request{
		Title:  fmt.Sprintf("%s Stock Price", ticker),
		XLabel: "Date",
		YLabel: "Closing Price",
		Series: []chart.Series{{Label: ticker, Bars: series.Bars}},
	})
	if err != nil {
		return fmt.Sprintf("Error rendering chart for %s: %v", ticker, err)
	}
	return fmt.Sprintf("Displayed chart for %s", ticker)
}

func (a *Agent) handleStats(args []string) string {
	if len(args) < 1 {
		return "Invalid command. Use: stats [TICKER] [PERIOD] [INTERVAL]"
	}
	ticker := strings.ToUpper(args[0])
	period, interval := a.periodInterval(args)

	series, err := a.Fetcher.FetchHistory(ticker, period, interval)
	if err != nil {
		return fmt.Sprintf("Error fetching data for %s: %v", ticker, err)
	}
	if series.Empty() {
		return fmt.Sprintf("No data available for ticker %s", ticker)
	}

	st, err := calculator.CalculateClosingStats(series.Bars)
	if err != nil {
		return fmt.Sprintf("No data available for ticker %s", ticker)
	}
	return fmt.Sprintf("Statistics for %s:\n  - Min: %.2f\n  - Max: %.2f\n  - Avg: %.2f",
		ticker, st.Min, st.Max, st.Mean)
}

func (a *Agent) handleCompare(args []string) string {
	if len(args) < 1 {
		return "Invalid command. Use: compare [TICKER1] [TICKER2] ..."
	}

	// Collect valid series first so no chart is drawn when every ticker
	// comes back empty.
	var valid []chart.Series
	var validTickers []string
	for _, arg := range args {
		ticker := strings.ToUpper(arg)
		series, err := a.Fetcher.FetchHistory(ticker, a.DefaultPeriod, a.DefaultInterval)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", ticker, err)
			continue
		}
		if series.Empty() {
			log.Printf("[INFO] no data found for %s", ticker)
			continue
		}
		valid = append(valid, chart.Series{Label: ticker, Bars: series.Bars})
		validTickers = append(validTickers, ticker)
	}
	if len(valid) == 0 {
		return "No valid ticker data to compare."
	}

	err := a.Renderer.Render(chart.Request{
		Title:  "Stock Price Comparison",
		XLabel: "Date",
		YLabel: "Closing Price",
		Series: valid,
	})
	if err != nil {
		return fmt.Sprintf("Error rendering comparison chart: %v", err)
	}
	return fmt.Sprintf("Displayed comparison for: %s", strings.Join(validTickers, ", "))
}
