package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"StockAnalysis/internal/model"
)

// TradingDaysPerYear annualizes daily volatility.
const TradingDaysPerYear = 252

// DailyReturns returns close[i]/close[i-1]-1. The first entry is undefined.
func DailyReturns(closes []float64) []model.Metric {
	out := make([]model.Metric, len(closes))
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		out[i] = model.Some(closes[i]/closes[i-1] - 1)
	}
	return out
}

// Annualize scales a daily standard deviation by sqrt(252).
func Annualize(dailyStd float64) float64 {
	return dailyStd * math.Sqrt(TradingDaysPerYear)
}

// RollingVolatility returns the annualized sample standard deviation of the
// trailing window of returns. A value is defined only when every return in
// the window is defined.
func RollingVolatility(returns []model.Metric, window int) []model.Metric {
	out := make([]model.Metric, len(returns))
	if window < 2 {
		return out
	}
	buf := make([]float64, window)
	for i := window - 1; i < len(returns); i++ {
		full := true
		for j, r := range returns[i-window+1 : i+1] {
			if !r.Valid {
				full = false
				break
			}
			buf[j] = r.Value
		}
		if full {
			out[i] = model.Some(Annualize(stat.StdDev(buf, nil)))
		}
	}
	return out
}
