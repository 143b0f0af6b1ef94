package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"StockAnalysis/internal/collector"
	"StockAnalysis/internal/config"
	"StockAnalysis/internal/model"
	"StockAnalysis/internal/recorder"
	"StockAnalysis/internal/report"
	"StockAnalysis/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := flag.String("config", "", "path to config file (default $CONFIG_PATH or configs/config.yaml)")
	tickerFlag := flag.String("ticker", "", "ticker symbol; prompts when omitted")
	periodFlag := flag.String("period", "", "look-back period (1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max)")
	watch := flag.Bool("watch", false, "re-run the analysis on the configured cron schedule")
	history := flag.Int("history", 0, "print the last N recorded runs of the ticker and exit")
	flag.Parse()

	if err := run(*cfgPath, *tickerFlag, *periodFlag, *watch, *history); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, tickerArg, periodArg string, watch bool, history int) error {
	// Load .env if present
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			cfgPath = v
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	defaultPeriod, _ := model.ParsePeriod(cfg.DataSource.DefaultPeriod)

	fmt.Println("Stock Valuation & Analysis Tool")

	// Resolve inputs
	var (
		ticker string
		period model.Period
	)
	if tickerArg == "" {
		ticker, period, err = promptInputs(os.Stdin, os.Stdout, defaultPeriod)
		if err != nil {
			return err
		}
	} else {
		if ticker, err = model.NormalizeTicker(tickerArg); err != nil {
			return err
		}
		period = defaultPeriod
		if periodArg != "" {
			if period, err = model.ParsePeriod(periodArg); err != nil {
				return err
			}
		}
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	if history > 0 {
		runs, err := rec.History(ticker, history)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		fmt.Print(report.FormatHistory(ticker, runs))
		return nil
	}

	// Init pipeline
	fetcher := collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy, cfg.Timeout())
	log.Printf("[INFO] data source: %s", fetcher.Name())
	sched := scheduler.NewScheduler(
		collector.NewCollector(fetcher),
		report.NewChartRenderer(cfg.Output.ChartDir, cfg.Output.ChartDPI),
		report.NewSummaryWriter(cfg.Output.SummaryDir),
		rec,
		os.Stdout,
	)

	res, err := sched.RunOnce(ticker, period)
	if err != nil {
		return err
	}
	fmt.Print(report.FormatSummary(res.Analysis.Summary, res.ChartPath, res.SummaryPath))

	if !watch {
		return nil
	}

	if err := sched.Watch(cfg.Schedule.WatchCron, ticker, period); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
	return nil
}
