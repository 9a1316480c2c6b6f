package chart

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guptarohit/asciigraph"
)

// TerminalRenderer draws line charts inline on a terminal using asciigraph.
type TerminalRenderer struct {
	Out    io.Writer
	Width  int
	Height int
}

// NewTerminalRenderer creates a renderer writing to stdout. Zero width or
// height fall back to sensible defaults.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 15
	}
	return &TerminalRenderer{Out: os.Stdout, Width: width, Height: height}
}

func (r *TerminalRenderer) Name() string { return "terminal" }

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

func (r *TerminalRenderer) Render(req Request) error {
	if len(req.Series) == 0 {
		return errors.New("no series to render")
	}

	data := make([][]float64, len(req.Series))
	labels := make([]string, len(req.Series))
	for i, s := range req.Series {
		closes := make([]float64, len(s.Bars))
		for j, b := range s.Bars {
			closes[j] = b.Close
		}
		data[i] = closes
		labels[i] = s.Label
	}

	var plot string
	if len(data) == 1 {
		plot = asciigraph.Plot(data[0],
			asciigraph.Width(r.Width),
			asciigraph.Height(r.Height),
			asciigraph.Caption(req.Title),
		)
	} else {
		colors := make([]asciigraph.AnsiColor, len(data))
		for i := range colors {
			colors[i] = seriesColors[i%len(seriesColors)]
		}
		plot = asciigraph.PlotMany(data,
			asciigraph.Width(r.Width),
			asciigraph.Height(r.Height),
			asciigraph.Caption(req.Title),
			asciigraph.SeriesColors(colors...),
			asciigraph.SeriesLegends(labels...),
		)
	}

	_, err := fmt.Fprintf(r.Out, "\n%s\n\n", plot)
	return err
}
