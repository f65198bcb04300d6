package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/somma-dev/somma/internal/balance"
	"github.com/somma-dev/somma/internal/config"
	"github.com/somma-dev/somma/internal/registry"
	"github.com/somma-dev/somma/internal/storage"
	"github.com/somma-dev/somma/internal/storage/sheets"
)

// env bundles the collaborators every data command needs.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *storage.Hybrid
	reg    *registry.Registry
	engine *balance.Engine
}

// loadEnv builds the runtime environment from the config file. A
// missing config file falls back to defaults rooted at ./data, so the
// tool works before `somma init` has ever run.
func loadEnv(configPath string) (*env, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default("data")
	} else if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	log := newLogger(cfg.Log.Level)

	reg, err := registry.Open(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening account registry: %w", err)
	}

	var remote storage.RowService
	if cfg.RemoteConfigured() {
		svc, err := sheets.New(context.Background(), cfg.Remote.CredentialsFile, cfg.Remote.SpreadsheetID, cfg.Remote.SheetName)
		if err != nil {
			// Probe failure is a downgrade, not a hard error.
			log.Warn().Err(err).Msg("remote spreadsheet unavailable")
		} else {
			remote = svc
		}
	}

	store := storage.Open(storage.Options{
		Remote:    remote,
		LocalPath: cfg.Data.LedgerPath,
		CacheTTL:  time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		Logger:    log,
	})

	return &env{
		cfg:    cfg,
		log:    log,
		store:  store,
		reg:    reg,
		engine: balance.NewEngine(reg),
	}, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
