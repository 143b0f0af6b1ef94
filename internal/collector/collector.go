package collector

import (
	"fmt"
	"log"
	"time"

	"StockAnalysis/internal/calculator"
	"StockAnalysis/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	DailyData []model.OHLCV
	Count     int
	Err       error
	Calls     int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, period model.Period) (model.PriceSeries, error) {
	m.Calls++
	if m.Err != nil {
		return model.PriceSeries{}, m.Err
	}
	bars := m.DailyData
	if bars == nil {
		bars = generateMockBars(m.Price, m.Count)
	}
	if len(bars) == 0 {
		return model.PriceSeries{}, &model.DataNotFoundError{Ticker: symbol, Period: period}
	}
	return model.PriceSeries{Symbol: symbol, Period: period, Bars: bars}, nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector orchestrates data fetching and indicator computation.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches the price history of one ticker, derives the indicators
// and computes the summary over the clean window.
func (c *Collector) Collect(ticker string, period model.Period) (*model.Analysis, error) {
	symbol, err := model.NormalizeTicker(ticker)
	if err != nil {
		return nil, err
	}

	series, err := c.Fetcher.FetchDailyBars(symbol, period)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if series.Len() == 0 {
		return nil, &model.DataNotFoundError{Ticker: symbol, Period: period}
	}

	ind := calculator.AddIndicators(series)
	clean := calculator.CleanWindow(ind)
	log.Printf("[INFO] %s: %d bars, %d after warmup", symbol, ind.Len(), clean.Len())

	summary, err := calculator.Summarize(clean, symbol)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", symbol, err)
	}
	return &model.Analysis{Series: ind, Summary: summary}, nil
}
