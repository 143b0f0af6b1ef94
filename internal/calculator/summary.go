package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"StockAnalysis/internal/model"
)

// MinSummaryRecords is the smallest clean window a summary can be computed on.
const MinSummaryRecords = 2

var hundred = decimal.NewFromInt(100)

// Summarize reduces a clean window to the summary statistics.
func Summarize(clean model.IndicatorSeries, ticker string) (*model.Summary, error) {
	n := len(clean.Bars)
	if n < MinSummaryRecords {
		return nil, &model.InsufficientHistoryError{Records: n, Required: MinSummaryRecords}
	}

	returns := make([]float64, 0, n)
	for _, b := range clean.Bars {
		if b.DailyReturn.Valid {
			returns = append(returns, b.DailyReturn.Value)
		}
	}
	if len(returns) < MinSummaryRecords {
		return nil, &model.InsufficientHistoryError{Records: len(returns), Required: MinSummaryRecords}
	}

	first, last := clean.Bars[0], clean.Bars[n-1]
	if first.Close <= 0 {
		return nil, fmt.Errorf("invalid start close %.4f on %s", first.Close, first.Time.Format("2006-01-02"))
	}
	totalReturn := last.Close/first.Close - 1
	avgDailyReturn := stat.Mean(returns, nil)
	annualVol := Annualize(stat.StdDev(returns, nil))

	return &model.Summary{
		Ticker:                  strings.ToUpper(ticker),
		PeriodStart:             first.Time,
		PeriodEnd:               last.Time,
		StartClose:              decimal.NewFromFloat(first.Close).Round(2),
		LatestClose:             decimal.NewFromFloat(last.Close).Round(2),
		TotalReturnPct:          RoundPercent(totalReturn, 2),
		AvgDailyReturnPct:       RoundPercent(avgDailyReturn, 4),
		AnnualizedVolatilityPct: RoundPercent(annualVol, 2),
	}, nil
}

// RoundPercent converts a fraction to a percentage rounded half away from zero.
func RoundPercent(fraction float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(fraction).Mul(hundred).Round(places)
}
