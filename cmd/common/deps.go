// Package common provides shared utilities for command implementations.
package common

import (
	"fmt"

	"github.com/jonesrussell/gocompare/internal/config"
	"github.com/jonesrussell/gocompare/internal/content"
	"github.com/jonesrussell/gocompare/internal/logger"
)

// CommandDeps holds common dependencies for all commands.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger logger.Interface
	Config config.Interface
	Client content.Reader
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	if d.Client == nil {
		return ErrClientRequired
	}
	return nil
}

// NewCommandDeps creates CommandDeps by loading config and creating the
// logger and content client. Debug forces the debug log level.
func NewCommandDeps(cfgFile string, debug bool) (CommandDeps, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("load config: %w", err)
	}

	logCfg := cfg.GetLogConfig()
	if debug {
		logCfg.Level = logger.DebugLevel
	}

	log, err := logger.New(logCfg)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("create logger: %w", err)
	}

	deps := CommandDeps{
		Logger: log,
		Config: cfg,
		Client: content.NewClient(cfg.GetContentConfig(), log),
	}

	if validateErr := deps.Validate(); validateErr != nil {
		return CommandDeps{}, fmt.Errorf("validate deps: %w", validateErr)
	}

	return deps, nil
}
