package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Summary holds the scalar statistics of the clean window. Numeric fields are pre-rounded.
type Summary struct {
	Ticker                  string
	PeriodStart             time.Time
	PeriodEnd               time.Time
	StartClose              decimal.Decimal
	LatestClose             decimal.Decimal
	TotalReturnPct          decimal.Decimal
	AvgDailyReturnPct       decimal.Decimal
	AnnualizedVolatilityPct decimal.Decimal
}

// SummaryField is one labelled line of a rendered summary.
type SummaryField struct {
	Label string
	Value string
}

// Fields returns the summary lines in their fixed order.
func (s *Summary) Fields() []SummaryField {
	return []SummaryField{
		{"Ticker", s.Ticker},
		{"Period Start", s.PeriodStart.Format(dateLayout)},
		{"Period End", s.PeriodEnd.Format(dateLayout)},
		{"Start Close", s.StartClose.StringFixed(2)},
		{"Latest Close", s.LatestClose.StringFixed(2)},
		{"Total Return (%)", s.TotalReturnPct.StringFixed(2)},
		{"Avg Daily Return (%)", s.AvgDailyReturnPct.StringFixed(4)},
		{"Annualized Volatility (%)", s.AnnualizedVolatilityPct.StringFixed(2)},
	}
}
