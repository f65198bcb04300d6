package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("data")
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, filepath.Join("data", "ledger.csv"), cfg.Data.LedgerPath)
	assert.Equal(t, "Sheet1", cfg.Remote.SheetName)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.RemoteConfigured())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "somma.yaml")
	cfg := Default("data")
	cfg.Remote.SpreadsheetID = "abc123"
	cfg.Log.Level = "debug"

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Data.LedgerPath, got.Data.LedgerPath)
	assert.Equal(t, "abc123", got.Remote.SpreadsheetID)
	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, 60, got.Cache.TTLSeconds)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRemoteConfigured(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials.json")

	cfg := Default("data")
	assert.False(t, cfg.RemoteConfigured())

	cfg.Remote.CredentialsFile = creds
	cfg.Remote.SpreadsheetID = "abc123"
	// The credentials file must actually exist on disk.
	assert.False(t, cfg.RemoteConfigured())

	require.NoError(t, os.WriteFile(creds, []byte("{}"), 0o600))
	assert.True(t, cfg.RemoteConfigured())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SOMMA_CREDENTIALS_FILE", "/tmp/creds.json")
	t.Setenv("SOMMA_SPREADSHEET_ID", "env-sheet")
	t.Setenv("SOMMA_SHEET_NAME", "")

	cfg := Default("data")
	cfg.Remote.SheetName = "Lançamentos"
	cfg.ApplyEnv()

	assert.Equal(t, "/tmp/creds.json", cfg.Remote.CredentialsFile)
	assert.Equal(t, "env-sheet", cfg.Remote.SpreadsheetID)
	// Empty env values never clobber the file.
	assert.Equal(t, "Lançamentos", cfg.Remote.SheetName)
}
