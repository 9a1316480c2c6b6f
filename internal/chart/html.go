package chart

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/browser"
)

// HTMLRenderer writes charts as standalone HTML files and optionally opens
// them in the default browser.
type HTMLRenderer struct {
	OutputDir   string
	OpenBrowser bool
}

// NewHTMLRenderer creates a renderer writing under outputDir.
func NewHTMLRenderer(outputDir string, openBrowser bool) *HTMLRenderer {
	if outputDir == "" {
		outputDir = "charts"
	}
	return &HTMLRenderer{OutputDir: outputDir, OpenBrowser: openBrowser}
}

func (r *HTMLRenderer) Name() string { return "html" }

func (r *HTMLRenderer) Render(req Request) error {
	if len(req.Series) == 0 {
		return errors.New("no series to render")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: req.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: req.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: req.YLabel, Scale: opts.Bool(true)}),
	)

	// The axis is keyed by the longest series' dates; shorter series align
	// by index.
	longest := 0
	for i, s := range req.Series {
		if len(s.Bars) > len(req.Series[longest].Bars) {
			longest = i
		}
	}
	dates := make([]string, len(req.Series[longest].Bars))
	for i, b := range req.Series[longest].Bars {
		dates[i] = b.Time.Format("2006-01-02")
	}
	line.SetXAxis(dates)

	for _, s := range req.Series {
		points := make([]opts.LineData, len(s.Bars))
		for i, b := range s.Bars {
			points[i] = opts.LineData{Value: b.Close}
		}
		line.AddSeries(s.Label, points)
	}
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	)

	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	path := filepath.Join(r.OutputDir, fmt.Sprintf("chart_%s.html", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	log.Printf("[INFO] chart written to %s", path)

	if r.OpenBrowser {
		if err := browser.OpenFile(path); err != nil {
			log.Printf("[WARN] open chart in browser: %v", err)
		}
	}
	return nil
}
