package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"StockAnalysis/internal/model"
	"StockAnalysis/internal/recorder"
)

var (
	headingColor = color.New(color.FgGreen, color.Bold)
	labelColor   = color.New(color.FgCyan)
)

// FormatSummary renders a finished run for the console.
func FormatSummary(s *model.Summary, chartPath, summaryPath string) string {
	var b strings.Builder

	b.WriteString("\n" + headingColor.Sprint("Done! Summary:") + "\n")
	for _, f := range s.Fields() {
		b.WriteString(fmt.Sprintf("  %s: %s\n", labelColor.Sprint(f.Label), f.Value))
	}
	b.WriteString(fmt.Sprintf("\nSaved chart: %s\n", chartPath))
	b.WriteString(fmt.Sprintf("Saved summary: %s\n", summaryPath))
	return b.String()
}

// FormatHistory renders previously recorded runs, newest first.
func FormatHistory(ticker string, runs []recorder.RunRecord) string {
	var b strings.Builder
	b.WriteString(headingColor.Sprintf("History for %s", strings.ToUpper(ticker)) + "\n")
	if len(runs) == 0 {
		b.WriteString("  no recorded runs\n")
		return b.String()
	}
	for _, r := range runs {
		b.WriteString(fmt.Sprintf("  %s  %-4s %s..%s  close %s  return %s%%  vol %s%%\n",
			r.RunAt.Format("2006-01-02 15:04"), r.Period,
			r.PeriodStart.Format("2006-01-02"), r.PeriodEnd.Format("2006-01-02"),
			r.LatestClose.StringFixed(2), r.TotalReturnPct.StringFixed(2),
			r.AnnualizedVolatilityPct.StringFixed(2)))
	}
	return b.String()
}
