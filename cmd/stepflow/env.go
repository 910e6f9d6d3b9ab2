package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/stepflow/internal/config"
	"github.com/mark3labs/stepflow/internal/journal"
	"github.com/mark3labs/stepflow/internal/locale"
	"github.com/mark3labs/stepflow/internal/logger"
	"github.com/mark3labs/stepflow/internal/tui/theme"
)

// loadEnvironment resolves configuration and applies the ambient pieces:
// logger level and file, theme, and the localized wizard captions.
func loadEnvironment() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger.Configure(cfg.LogLevel, cfg.LogFile)
	theme.SetCurrent(theme.ByName(cfg.Theme))

	if cfg.LocaleFile != "" {
		if err := locale.LoadMessageFile(cfg.LocaleFile); err != nil {
			logger.Warn("Failed to load locale file %s: %v", cfg.LocaleFile, err)
		}
	}
	if cfg.Language != "" {
		if err := locale.SetLanguage(cfg.Language); err != nil {
			logger.Warn("Failed to set language %q: %v", cfg.Language, err)
		}
	}

	return cfg, nil
}

// openJournal brings up the embedded event journal under dataDir. The
// returned closer shuts the NATS server down again.
func openJournal(ctx context.Context, dataDir string) (*journal.Store, func(), error) {
	ns, err := journal.StartEmbeddedNATS(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("starting journal server: %w", err)
	}

	nc, err := journal.ConnectInProcess(ns)
	if err != nil {
		ns.Shutdown()
		return nil, nil, fmt.Errorf("connecting to journal: %w", err)
	}

	js, err := journal.CreateJetStream(nc)
	if err != nil {
		ns.Shutdown()
		return nil, nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	stream, err := journal.SetupStream(ctx, js)
	if err != nil {
		ns.Shutdown()
		return nil, nil, fmt.Errorf("setting up event stream: %w", err)
	}

	closer := func() {
		if err := journal.Shutdown(nc, ns); err != nil {
			logger.Warn("Journal shutdown: %v", err)
		}
	}
	return journal.NewStore(js, stream), closer, nil
}
