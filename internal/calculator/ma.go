package calculator

import (
	"errors"

	"StockAnalysis/internal/model"
)

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// RollingSMA returns the trailing SMA at every index. Entries before
// index window-1 are undefined.
func RollingSMA(prices []float64, window int) []model.Metric {
	out := make([]model.Metric, len(prices))
	for i := range prices {
		if ma, err := CalculateSMA(prices[:i+1], window); err == nil {
			out[i] = model.Some(ma)
		}
	}
	return out
}
