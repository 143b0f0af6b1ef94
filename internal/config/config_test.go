package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "1y", cfg.DataSource.DefaultPeriod)
	assert.Equal(t, "charts", cfg.Output.ChartDir)
	assert.Equal(t, "output", cfg.Output.SummaryDir)
	assert.Equal(t, 150, cfg.Output.ChartDPI)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "data/stock_analysis.db", cfg.Database.SQLitePath)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_source:
  default_period: 6mo
  timeout_seconds: 10
output:
  chart_dir: /tmp/charts
  chart_dpi: 300
schedule:
  watch_cron: "0 0 18 * * *"
`), 0o644))

	t.Setenv("SUMMARY_DIR", "/tmp/summaries")
	t.Setenv("CHART_DPI", "96")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "6mo", cfg.DataSource.DefaultPeriod)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "/tmp/charts", cfg.Output.ChartDir)
	assert.Equal(t, "/tmp/summaries", cfg.Output.SummaryDir)
	assert.Equal(t, 96, cfg.Output.ChartDPI)
	assert.Equal(t, "0 0 18 * * *", cfg.Schedule.WatchCron)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate_RejectsUnknownPeriod(t *testing.T) {
	t.Setenv("DEFAULT_PERIOD", "3y")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "default_period")
}
