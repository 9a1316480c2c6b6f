package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"StockPilot/internal/agent"
	"StockPilot/internal/chart"
	"StockPilot/internal/collector"
	"StockPilot/internal/config"
	"StockPilot/internal/repl"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, relying on environment variables")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "piquette" {
		fetcher = collector.NewPiquetteFetcher()
	} else {
		yf := collector.NewYahooFetcher(cfg.Proxy)
		if cfg.DataSource.BaseURL != "" {
			yf.BaseURL = cfg.DataSource.BaseURL
		}
		fetcher = yf
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init renderer
	var renderer chart.Renderer
	switch cfg.Chart.Mode {
	case "html":
		renderer = chart.NewHTMLRenderer(cfg.Chart.OutputDir, cfg.Chart.OpenBrowser)
	case "none":
		renderer = chart.NewNoopRenderer()
	default:
		renderer = chart.NewTerminalRenderer(cfg.Chart.Width, cfg.Chart.Height)
	}
	log.Printf("[INFO] chart renderer: %s", renderer.Name())

	a := agent.NewAgent(fetcher, renderer, cfg.Defaults.Period, cfg.Defaults.Interval)

	fmt.Println("Welcome to StockPilot!")
	fmt.Println("Type 'help' to see available commands or 'exit' to quit.")

	loop := repl.NewLoop(os.Stdin, os.Stdout, a)
	if err := loop.Run(); err != nil {
		log.Fatalf("[FATAL] read input: %v", err)
	}
}
