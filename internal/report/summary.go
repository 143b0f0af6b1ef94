package report

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"StockAnalysis/internal/model"
)

// SummaryWriter persists a summary as "Label: value" lines.
type SummaryWriter struct {
	Dir string
	Now func() time.Time
}

// NewSummaryWriter creates a writer for dir.
func NewSummaryWriter(dir string) *SummaryWriter {
	return &SummaryWriter{Dir: dir}
}

// Write creates {TICKER}_summary_{timestamp}.txt and returns its path.
func (w *SummaryWriter) Write(s *model.Summary, ticker string) (path string, err error) {
	path, err = outputPath(w.Dir, ticker, "summary", "txt", clock(w.Now))
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create summary file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close summary file: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	for _, field := range s.Fields() {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", field.Label, field.Value); err != nil {
			return "", fmt.Errorf("write summary: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}
