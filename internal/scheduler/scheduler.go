package scheduler

import (
	"fmt"
	"io"
	"log"

	"github.com/robfig/cron/v3"

	"StockAnalysis/internal/collector"
	"StockAnalysis/internal/model"
	"StockAnalysis/internal/recorder"
	"StockAnalysis/internal/report"
)

// ChartRenderer renders the indicator series and returns the written path.
type ChartRenderer interface {
	Render(series model.IndicatorSeries, ticker string) (string, error)
}

// SummaryWriter persists the summary and returns the written path.
type SummaryWriter interface {
	Write(s *model.Summary, ticker string) (string, error)
}

// Result is the outcome of one analysis run.
type Result struct {
	Analysis    *model.Analysis
	ChartPath   string
	SummaryPath string
}

// Scheduler runs the analysis pipeline once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Charts    ChartRenderer
	Summaries SummaryWriter
	Recorder  recorder.Recorder
	Out       io.Writer
}

// NewScheduler creates a new Scheduler.
func NewScheduler(col *collector.Collector, charts ChartRenderer, summaries SummaryWriter, rec recorder.Recorder, out io.Writer) *Scheduler {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if out == nil {
		out = io.Discard
	}
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		Collector: col,
		Charts:    charts,
		Summaries: summaries,
		Recorder:  rec,
		Out:       out,
	}
}

// RunOnce collects, renders, writes and records a single analysis.
// Any fetch, computation or output error aborts the run.
func (s *Scheduler) RunOnce(ticker string, period model.Period) (*Result, error) {
	log.Printf("[INFO] analysing %s over %s", ticker, period)
	a, err := s.Collector.Collect(ticker, period)
	if err != nil {
		return nil, err
	}
	symbol := a.Summary.Ticker

	chartPath, err := s.Charts.Render(a.Series, symbol)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	summaryPath, err := s.Summaries.Write(a.Summary, symbol)
	if err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	if err := s.Recorder.RecordRun(recorder.NewRunRecord(a.Summary, period, chartPath, summaryPath)); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}
	return &Result{Analysis: a, ChartPath: chartPath, SummaryPath: summaryPath}, nil
}

// Watch registers a recurring run of the same ticker and period.
func (s *Scheduler) Watch(spec, ticker string, period model.Period) error {
	if _, err := s.Cron.AddFunc(spec, func() { s.watchTask(ticker, period) }); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	log.Printf("[INFO] watching %s (%s) on %q", ticker, period, spec)
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running task.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) watchTask(ticker string, period model.Period) {
	res, err := s.RunOnce(ticker, period)
	if err != nil {
		log.Printf("[ERROR] scheduled run %s: %v", ticker, err)
		return
	}
	fmt.Fprint(s.Out, report.FormatSummary(res.Analysis.Summary, res.ChartPath, res.SummaryPath))
}
