package chart

import "StockPilot/internal/model"

// Series is one labeled line on a chart.
type Series struct {
	Label string
	Bars  []model.OHLCV
}

// Request describes a single chart draw.
type Request struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Renderer draws a chart somewhere visible to the user. Render is
// synchronous: it returns only after the chart has been fully written.
type Renderer interface {
	Render(req Request) error
	Name() string
}

// NoopRenderer discards render requests. Used when charting is disabled.
type NoopRenderer struct{}

func NewNoopRenderer() *NoopRenderer { return &NoopRenderer{} }

func (n *NoopRenderer) Name() string           { return "noop" }
func (n *NoopRenderer) Render(_ Request) error { return nil }
