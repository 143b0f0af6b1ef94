package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"StockAnalysis/internal/model"
)

// promptInputs asks for the ticker and period. An empty period answer
// falls back to defaultPeriod.
func promptInputs(in io.Reader, out io.Writer, defaultPeriod model.Period) (string, model.Period, error) {
	r := bufio.NewReader(in)

	fmt.Fprint(out, "Enter a stock ticker (e.g., AAPL): ")
	ticker, err := readLine(r)
	if err != nil {
		return "", "", fmt.Errorf("read ticker: %w", err)
	}
	ticker, err = model.NormalizeTicker(ticker)
	if err != nil {
		return "", "", err
	}

	fmt.Fprintf(out, "Enter a period (6mo, 1y, 5y). Press Enter for %s: ", defaultPeriod)
	raw, err := readLine(r)
	if err != nil {
		return "", "", fmt.Errorf("read period: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return ticker, defaultPeriod, nil
	}
	period, err := model.ParsePeriod(raw)
	if err != nil {
		return "", "", err
	}
	return ticker, period, nil
}

// readLine returns one line without its terminator; EOF after partial input is not an error.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}
