package model

import "fmt"

// DataNotFoundError is returned when the vendor has no rows for a ticker/period.
type DataNotFoundError struct {
	Ticker string
	Period Period
	Reason string
}

func (e *DataNotFoundError) Error() string {
	msg := fmt.Sprintf("No data found for ticker '%s'", e.Ticker)
	if e.Period != "" {
		msg += fmt.Sprintf(" (period %s)", e.Period)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg + ". Check the symbol and try again."
}

// InsufficientHistoryError is returned when fewer records than required survive the warmup.
type InsufficientHistoryError struct {
	Records  int
	Required int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("not enough price history: %d record(s) after the 50-day moving average warmup, need at least %d; try a longer period",
		e.Records, e.Required)
}
