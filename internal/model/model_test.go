package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, Period1y, p)

	p, err = ParsePeriod(" 6MO ")
	require.NoError(t, err)
	assert.Equal(t, Period6mo, p)

	_, err = ParsePeriod("3y")
	assert.ErrorContains(t, err, "unsupported period")
}

func TestNormalizeTicker(t *testing.T) {
	s, err := NormalizeTicker("  aapl ")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", s)

	_, err = NormalizeTicker("   ")
	assert.Error(t, err)
}

func TestSummaryFields_Order(t *testing.T) {
	s := &Summary{
		Ticker:                  "MSFT",
		PeriodStart:             time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:               time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		StartClose:              decimal.RequireFromString("100"),
		LatestClose:             decimal.RequireFromString("112.345").Round(2),
		TotalReturnPct:          decimal.RequireFromString("12.35"),
		AvgDailyReturnPct:       decimal.RequireFromString("0.1235"),
		AnnualizedVolatilityPct: decimal.RequireFromString("20.1"),
	}
	want := []SummaryField{
		{"Ticker", "MSFT"},
		{"Period Start", "2024-03-01"},
		{"Period End", "2024-12-31"},
		{"Start Close", "100.00"},
		{"Latest Close", "112.35"},
		{"Total Return (%)", "12.35"},
		{"Avg Daily Return (%)", "0.1235"},
		{"Annualized Volatility (%)", "20.10"},
	}
	assert.Equal(t, want, s.Fields())
}

func TestDataNotFoundError_Message(t *testing.T) {
	err := &DataNotFoundError{Ticker: "ZZZZ", Period: Period1y}
	assert.Equal(t, "No data found for ticker 'ZZZZ' (period 1y). Check the symbol and try again.", err.Error())
}
