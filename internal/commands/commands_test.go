package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somma-dev/somma/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "data"))

	cfg, err := config.Load(filepath.Join(dir, "somma.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.Data.Dir)
	assert.Equal(t, filepath.Join(dir, "data", "ledger.csv"), cfg.Data.LedgerPath)

	assert.DirExists(t, filepath.Join(dir, "data"))

	// Refuses to clobber an existing workspace.
	assert.ErrorContains(t, runInit(dir, "data"), "already exists")
}

func TestMonthRange(t *testing.T) {
	start, end, err := monthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), end)

	start, end, err = monthRange("2023-12")
	require.NoError(t, err)
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, start.Month(), end.Month())

	_, _, err = monthRange("Feb 2024")
	assert.ErrorContains(t, err, "expected YYYY-MM")

	// Empty selects the current month.
	start, end, err = monthRange("")
	require.NoError(t, err)
	now := time.Now()
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, 1, start.Day())
	assert.True(t, end.After(start) || end.Equal(start))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer text", 5))
	assert.Equal(t, "açaí", truncate("açaí", 4))
}
