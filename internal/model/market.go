package model

import (
	"fmt"
	"strings"
	"time"
)

// OHLCV represents a single daily bar.
type OHLCV struct {
	Time   time.Time // trading date, UTC midnight
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSeries holds the normalized daily bars for one symbol, oldest first.
type PriceSeries struct {
	Symbol string
	Period Period
	Bars   []OHLCV
}

// Len returns the number of bars.
func (s PriceSeries) Len() int { return len(s.Bars) }

// Closes extracts the close prices in order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Period is a look-back selector understood by the data vendor.
type Period string

const (
	Period1d  Period = "1d"
	Period5d  Period = "5d"
	Period1mo Period = "1mo"
	Period3mo Period = "3mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
	Period2y  Period = "2y"
	Period5y  Period = "5y"
	Period10y Period = "10y"
	PeriodYTD Period = "ytd"
	PeriodMax Period = "max"
)

// DefaultPeriod is used when no period is given.
const DefaultPeriod = Period1y

var supportedPeriods = []Period{
	Period1d, Period5d, Period1mo, Period3mo, Period6mo,
	Period1y, Period2y, Period5y, Period10y, PeriodYTD, PeriodMax,
}

// SupportedPeriods returns the accepted period selectors.
func SupportedPeriods() []Period {
	out := make([]Period, len(supportedPeriods))
	copy(out, supportedPeriods)
	return out
}

// ParsePeriod validates a period selector. An empty string yields DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPeriod, nil
	}
	for _, p := range supportedPeriods {
		if Period(s) == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("unsupported period %q (use one of %s)", s, joinPeriods(supportedPeriods))
}

func joinPeriods(ps []Period) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}

// NormalizeTicker trims and upper-cases a user supplied symbol.
func NormalizeTicker(s string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "" {
		return "", fmt.Errorf("ticker must not be empty")
	}
	return t, nil
}
