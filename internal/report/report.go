// Package report writes analysis results: the price chart, the summary file
// and the console rendering.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// outputPath builds {dir}/{TICKER}_{kind}_{timestamp}.{ext}, creating dir if needed.
func outputPath(dir, ticker, kind, ext string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s_%s.%s", strings.ToUpper(ticker), kind, now.Format(timestampLayout), ext)
	return filepath.Join(dir, name), nil
}

func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}
