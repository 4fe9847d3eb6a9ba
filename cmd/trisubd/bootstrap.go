package main

import (
	"log/slog"

	"trisub/internal/config"
	"trisub/internal/daemon"
	"trisub/internal/queue"
	"trisub/internal/workflow"
)

func bootstrap(cfg *config.Config, logger *slog.Logger) (*daemon.Daemon, error) {
	store, err := queue.Open(cfg)
	if err != nil {
		return nil, err
	}

	manager := workflow.NewManager(cfg, store, logger)
	d, err := daemon.New(cfg, store, logger, manager)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return d, nil
}
