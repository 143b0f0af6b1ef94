package collector

import "StockAnalysis/internal/model"

// Fetcher defines the interface for fetching daily price history.
// Implementations return a normalized series or a *model.DataNotFoundError.
type Fetcher interface {
	FetchDailyBars(symbol string, period model.Period) (model.PriceSeries, error)
	Name() string
}
