package scheduler

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAnalysis/internal/collector"
	"StockAnalysis/internal/model"
	"StockAnalysis/internal/recorder"
	"StockAnalysis/internal/report"
)

type fakeCharts struct {
	calls int
	err   error
}

func (f *fakeCharts) Render(series model.IndicatorSeries, ticker string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "charts/" + ticker + ".png", nil
}

type fakeSummaries struct {
	calls int
	err   error
}

func (f *fakeSummaries) Write(s *model.Summary, ticker string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "output/" + ticker + ".txt", nil
}

type memRecorder struct {
	recorder.NoopRecorder
	runs []*recorder.RunRecord
	err  error
}

func (m *memRecorder) RecordRun(r *recorder.RunRecord) error {
	m.runs = append(m.runs, r)
	return m.err
}

func TestRunOnce_Success(t *testing.T) {
	charts, sums, rec := &fakeCharts{}, &fakeSummaries{}, &memRecorder{}
	s := NewScheduler(collector.NewCollector(&collector.MockFetcher{Price: 50, Count: 90}), charts, sums, rec, nil)

	res, err := s.RunOnce("tsla", model.Period6mo)
	require.NoError(t, err)

	assert.Equal(t, "charts/TSLA.png", res.ChartPath)
	assert.Equal(t, "output/TSLA.txt", res.SummaryPath)
	assert.Equal(t, 90, res.Analysis.Series.Len())
	require.Len(t, rec.runs, 1)
	assert.Equal(t, "TSLA", rec.runs[0].Ticker)
	assert.Equal(t, model.Period6mo, rec.runs[0].Period)
	assert.Equal(t, "charts/TSLA.png", rec.runs[0].ChartPath)
}

func TestRunOnce_InsufficientHistoryWritesNothing(t *testing.T) {
	charts, sums := &fakeCharts{}, &fakeSummaries{}
	s := NewScheduler(collector.NewCollector(&collector.MockFetcher{Price: 50, Count: 30}), charts, sums, nil, nil)

	_, err := s.RunOnce("TSLA", model.Period1mo)
	var ih *model.InsufficientHistoryError
	require.True(t, errors.As(err, &ih))
	assert.Equal(t, 0, charts.calls)
	assert.Equal(t, 0, sums.calls)
}

func TestRunOnce_OutputErrorsPropagate(t *testing.T) {
	fetcher := &collector.MockFetcher{Price: 50, Count: 90}

	s := NewScheduler(collector.NewCollector(fetcher), &fakeCharts{err: errors.New("disk full")}, &fakeSummaries{}, nil, nil)
	_, err := s.RunOnce("TSLA", model.Period1y)
	assert.ErrorContains(t, err, "render chart: disk full")

	sums := &fakeSummaries{err: errors.New("permission denied")}
	s = NewScheduler(collector.NewCollector(fetcher), &fakeCharts{}, sums, nil, nil)
	_, err = s.RunOnce("TSLA", model.Period1y)
	assert.ErrorContains(t, err, "write summary: permission denied")
}

func TestRunOnce_RecorderFailureIsNotFatal(t *testing.T) {
	rec := &memRecorder{err: errors.New("database is locked")}
	s := NewScheduler(collector.NewCollector(&collector.MockFetcher{Price: 50, Count: 90}), &fakeCharts{}, &fakeSummaries{}, rec, nil)
	_, err := s.RunOnce("TSLA", model.Period1y)
	assert.NoError(t, err)
}

func TestRunOnce_WithRealReporters(t *testing.T) {
	dir := t.TempDir()
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
	defer rec.Close()

	s := NewScheduler(
		collector.NewCollector(&collector.MockFetcher{Price: 120, Count: 75}),
		report.NewChartRenderer(filepath.Join(dir, "charts"), 72),
		report.NewSummaryWriter(filepath.Join(dir, "output")),
		rec, nil,
	)
	res, err := s.RunOnce("nvda", model.Period1y)
	require.NoError(t, err)
	assert.FileExists(t, res.ChartPath)
	assert.FileExists(t, res.SummaryPath)

	runs, err := rec.History("NVDA", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, res.SummaryPath, runs[0].SummaryPath)
}

func TestWatch_RejectsBadSpec(t *testing.T) {
	s := NewScheduler(collector.NewCollector(&collector.MockFetcher{}), &fakeCharts{}, &fakeSummaries{}, nil, nil)
	assert.Error(t, s.Watch("not a cron", "AAPL", model.Period1y))
	assert.NoError(t, s.Watch("0 0 18 * * 1-5", "AAPL", model.Period1y))
	assert.Len(t, s.Cron.Entries(), 1)
}

func TestWatchTask_PrintsSummary(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	s := NewScheduler(collector.NewCollector(&collector.MockFetcher{Price: 50, Count: 90}), &fakeCharts{}, &fakeSummaries{}, nil, &out)

	s.watchTask("AMD", model.Period1y)
	assert.Contains(t, out.String(), "Ticker: AMD")
	assert.Contains(t, out.String(), "Saved chart: charts/AMD.png")
}
