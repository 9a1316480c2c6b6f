package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"StockPilot/internal/model"
)

func testBars(closes ...float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:  time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Close: c,
		}
	}
	return bars
}

func TestTerminalRenderer_SingleSeries(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(60, 10)
	r.Out = &out

	err := r.Render(Request{
		Title:  "AAPL Stock Price",
		Series: []Series{{Label: "AAPL", Bars: testBars(180, 185, 183, 190)}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "AAPL Stock Price") {
		t.Error("expected caption in plot output")
	}
}

func TestTerminalRenderer_ComparisonHasLegends(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(60, 10)
	r.Out = &out

	err := r.Render(Request{
		Title: "Stock Price Comparison",
		Series: []Series{
			{Label: "AAPL", Bars: testBars(180, 185, 183)},
			{Label: "MSFT", Bars: testBars(410, 412, 418)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := out.String()
	for _, label := range []string{"AAPL", "MSFT"} {
		if !strings.Contains(got, label) {
			t.Errorf("expected legend for %s in plot output", label)
		}
	}
}

func TestTerminalRenderer_NoSeries(t *testing.T) {
	r := NewTerminalRenderer(0, 0)
	if err := r.Render(Request{Title: "empty"}); err == nil {
		t.Error("expected error for request with no series")
	}
}

func TestNoopRenderer(t *testing.T) {
	n := NewNoopRenderer()
	if err := n.Render(Request{Title: "anything"}); err != nil {
		t.Errorf("noop renderer must not fail: %v", err)
	}
	if n.Name() != "noop" {
		t.Errorf("unexpected name %q", n.Name())
	}
}
