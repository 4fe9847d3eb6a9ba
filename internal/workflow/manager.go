package workflow

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"trisub/internal/config"
	"trisub/internal/discovery"
	"trisub/internal/logging"
	"trisub/internal/merge"
	"trisub/internal/queue"
	"trisub/internal/translit"
)

// Manager coordinates discovery, the merge queue, and merge execution.
type Manager struct {
	cfg      *config.Config
	store    *queue.Store
	scanner  *discovery.Scanner
	translit merge.Transliterate
	logger   *slog.Logger

	mu      sync.Mutex
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	running bool
}

// NewManager constructs a workflow manager. The transliterator comes from
// configuration: the external command when one is set, otherwise disabled.
func NewManager(cfg *config.Config, store *queue.Store, logger *slog.Logger) *Manager {
	var fn merge.Transliterate = translit.Disabled
	if cfg.Transliterator.Command != "" {
		cmd := translit.Command{
			Path:    cfg.Transliterator.Command,
			Args:    cfg.Transliterator.Args,
			Timeout: time.Duration(cfg.Transliterator.TimeoutSeconds) * time.Second,
		}
		fn = cmd.Transliterate
	}

	return &Manager{
		cfg:      cfg,
		store:    store,
		scanner:  discovery.NewScanner(cfg),
		translit: fn,
		logger:   logging.WithComponent(logger, "workflow"),
	}
}

// Start begins the background scan/merge loop.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return errors.New("workflow already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true
	m.wg.Add(1)
	go m.runLoop(runCtx)
	return nil
}

// Stop terminates background processing and waits for completion.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	m.running = false
	m.cancel = nil
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
}

// Running reports whether the background loop is active.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Manager) runLoop(ctx context.Context) {
	defer m.wg.Done()

	// Items stranded in merging by a previous crash go back to pending.
	if reset, err := m.store.ResetStuckMerging(ctx); err != nil {
		m.logger.Warn("reset stuck merges failed", logging.Error(err))
	} else if reset > 0 {
		m.logger.Info("reset stuck merges", logging.Int64("count", reset))
	}

	scanInterval := time.Duration(m.cfg.Workflow.ScanInterval) * time.Second
	retryInterval := time.Duration(m.cfg.Workflow.ErrorRetryInterval) * time.Second

	for {
		if err := m.RunOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			m.logger.Error("merge pass failed", logging.Error(err))
			if !sleepCtx(ctx, retryInterval) {
				return
			}
			continue
		}
		if !sleepCtx(ctx, scanInterval) {
			return
		}
	}
}

// RunOnce performs a single scan-and-merge pass: discover pairs, enqueue
// unseen fingerprints, then drain the pending queue.
func (m *Manager) RunOnce(ctx context.Context) error {
	if err := m.enqueueDiscovered(ctx); err != nil {
		return err
	}
	return m.drainPending(ctx)
}

func (m *Manager) enqueueDiscovered(ctx context.Context) error {
	pairs, err := m.scanner.Scan()
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fingerprint, err := pair.Fingerprint()
		if err != nil {
			m.logger.Warn("fingerprint pair failed",
				logging.String(logging.FieldPair, pair.BaseName),
				logging.Error(err))
			continue
		}
		existing, err := m.store.FindByFingerprint(ctx, fingerprint)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		item, err := m.store.Enqueue(ctx, pair, fingerprint)
		if err != nil {
			return err
		}
		m.logger.Info("queued subtitle pair",
			logging.Int64(logging.FieldItemID, item.ID),
			logging.String(logging.FieldPair, pair.BaseName),
			logging.String("source", pair.SourcePath),
			logging.String("target", pair.TargetPath))
	}
	return nil
}

func (m *Manager) drainPending(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		item, err := m.store.NextPending(ctx)
		if err != nil {
			return err
		}
		if item == nil {
			return nil
		}
		if err := m.processItem(ctx, item); err != nil {
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
