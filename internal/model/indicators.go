package model

// Metric is a derived value that is undefined during an indicator's warmup.
type Metric struct {
	Value float64
	Valid bool
}

// Some wraps a defined value.
func Some(v float64) Metric { return Metric{Value: v, Valid: true} }

// IndicatorBar is a daily bar extended with the derived indicators.
type IndicatorBar struct {
	OHLCV
	DailyReturn   Metric
	MA20          Metric
	MA50          Metric
	Volatility20d Metric // annualized
}

// Complete reports whether every derived field is defined.
func (b IndicatorBar) Complete() bool {
	return b.DailyReturn.Valid && b.MA20.Valid && b.MA50.Valid && b.Volatility20d.Valid
}

// IndicatorSeries is a PriceSeries with derived columns, same length and dates.
type IndicatorSeries struct {
	Symbol string
	Period Period
	Bars   []IndicatorBar
}

// Len returns the number of bars.
func (s IndicatorSeries) Len() int { return len(s.Bars) }

// Analysis is the result of one collect step.
type Analysis struct {
	Series  IndicatorSeries
	Summary *Summary
}
