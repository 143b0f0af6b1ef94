package recorder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"StockAnalysis/internal/model"
)

// RunRecord holds one completed analysis run.
type RunRecord struct {
	ID                      string
	RunAt                   time.Time
	Ticker                  string
	Period                  model.Period
	PeriodStart             time.Time
	PeriodEnd               time.Time
	StartClose              decimal.Decimal
	LatestClose             decimal.Decimal
	TotalReturnPct          decimal.Decimal
	AvgDailyReturnPct       decimal.Decimal
	AnnualizedVolatilityPct decimal.Decimal
	ChartPath               string
	SummaryPath             string
}

// NewRunRecord builds a record for a finished run with a fresh id.
func NewRunRecord(s *model.Summary, period model.Period, chartPath, summaryPath string) *RunRecord {
	return &RunRecord{
		ID:                      uuid.NewString(),
		RunAt:                   time.Now(),
		Ticker:                  s.Ticker,
		Period:                  period,
		PeriodStart:             s.PeriodStart,
		PeriodEnd:               s.PeriodEnd,
		StartClose:              s.StartClose,
		LatestClose:             s.LatestClose,
		TotalReturnPct:          s.TotalReturnPct,
		AvgDailyReturnPct:       s.AvgDailyReturnPct,
		AnnualizedVolatilityPct: s.AnnualizedVolatilityPct,
		ChartPath:               chartPath,
		SummaryPath:             summaryPath,
	}
}

// Recorder persists the history of analysis runs.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	History(ticker string, limit int) ([]RunRecord, error)
	Close() error
}

var (
	_ Recorder = (*SQLiteRecorder)(nil)
	_ Recorder = (*NoopRecorder)(nil)
)
