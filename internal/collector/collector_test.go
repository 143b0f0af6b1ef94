package collector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAnalysis/internal/model"
)

func TestCollect_ComputesSummary(t *testing.T) {
	f := &MockFetcher{Price: 200, Count: 120}
	a, err := NewCollector(f).Collect(" msft ", model.Period6mo)
	require.NoError(t, err)

	assert.Equal(t, 1, f.Calls)
	assert.Equal(t, 120, a.Series.Len(), "full series is kept for charting")
	assert.Equal(t, "MSFT", a.Summary.Ticker)
	assert.Equal(t, a.Series.Bars[49].Time, a.Summary.PeriodStart)
	assert.Equal(t, a.Series.Bars[119].Time, a.Summary.PeriodEnd)
	assert.True(t, a.Summary.TotalReturnPct.IsPositive())
}

func TestCollect_EmptyFetchIsDataNotFound(t *testing.T) {
	f := &MockFetcher{DailyData: []model.OHLCV{}}
	a, err := NewCollector(f).Collect("NOPE", model.Period1y)
	assert.Nil(t, a)

	var nf *model.DataNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "NOPE", nf.Ticker)
}

func TestCollect_ShortHistory(t *testing.T) {
	f := &MockFetcher{Price: 10, Count: 50}
	_, err := NewCollector(f).Collect("SHRT", model.Period1mo)

	var ih *model.InsufficientHistoryError
	require.True(t, errors.As(err, &ih))
	assert.Equal(t, 1, ih.Records)
}

func TestCollect_EmptyTicker(t *testing.T) {
	f := &MockFetcher{Price: 10, Count: 100}
	_, err := NewCollector(f).Collect("  ", model.Period1y)
	assert.Error(t, err)
	assert.Equal(t, 0, f.Calls)
}

func TestCollect_FetchError(t *testing.T) {
	f := &MockFetcher{Err: errors.New("connection refused")}
	_, err := NewCollector(f).Collect("AAPL", model.Period1y)
	assert.ErrorContains(t, err, "connection refused")
}
