package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/stackwatch/checkstack/internal/application/check"
	"github.com/stackwatch/checkstack/internal/infrastructure/config"
	"github.com/stackwatch/checkstack/internal/infrastructure/evaluator"
	"github.com/stackwatch/checkstack/internal/infrastructure/httpclient"
	"github.com/stackwatch/checkstack/internal/pkg/logger"
	"github.com/stackwatch/checkstack/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	CheckService *check.Service
	Config       ports.ConfigProvider
	Logger       ports.Logger
	// CloseLogger tears down the log sink; call it on process exit.
	CloseLogger func() error
}

// BuildContainer constructs the dependency graph for one invocation.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log, closeLogger, err := logger.New(logger.Options{
		Level: level,
		File:  cfg.Logging.File,
		BaseFields: map[string]interface{}{
			"run_id": uuid.NewString(),
		},
	})
	if err != nil {
		return nil, err
	}

	checkService := &check.Service{
		Fetcher:    httpclient.New(log),
		Evaluators: evaluator.Registry(),
		Logger:     log,
	}

	return &Container{
		CheckService: checkService,
		Config:       cfgLoader,
		Logger:       log,
		CloseLogger:  closeLogger,
	}, nil
}
