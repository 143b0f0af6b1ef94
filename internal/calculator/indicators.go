package calculator

import "StockAnalysis/internal/model"

const (
	shortWindow      = 20
	longWindow       = 50
	volatilityWindow = 20
)

// AddIndicators derives daily return, MA20, MA50 and 20-day annualized
// volatility for every bar. Each value depends only on closes up to and
// including its own bar.
func AddIndicators(series model.PriceSeries) model.IndicatorSeries {
	closes := series.Closes()
	returns := DailyReturns(closes)
	ma20 := RollingSMA(closes, shortWindow)
	ma50 := RollingSMA(closes, longWindow)
	vol := RollingVolatility(returns, volatilityWindow)

	bars := make([]model.IndicatorBar, len(series.Bars))
	for i, b := range series.Bars {
		bars[i] = model.IndicatorBar{
			OHLCV:         b,
			DailyReturn:   returns[i],
			MA20:          ma20[i],
			MA50:          ma50[i],
			Volatility20d: vol[i],
		}
	}
	return model.IndicatorSeries{Symbol: series.Symbol, Period: series.Period, Bars: bars}
}

// CleanWindow drops every bar that still has an undefined indicator.
func CleanWindow(series model.IndicatorSeries) model.IndicatorSeries {
	clean := model.IndicatorSeries{Symbol: series.Symbol, Period: series.Period}
	for _, b := range series.Bars {
		if b.Complete() {
			clean.Bars = append(clean.Bars, b)
		}
	}
	return clean
}
