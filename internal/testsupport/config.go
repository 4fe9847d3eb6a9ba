// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"trisub/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The media directory already exists so discovery scans succeed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.MediaDirs = []string{filepath.Join(base, "media")}
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	mkdir(t, cfg.Paths.MediaDirs[0])

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithTransliterator points the config at an external transliterator command.
func WithTransliterator(path string, args ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Transliterator.Command = path
		cfg.Transliterator.Args = args
	}
}

// WithOverwrite enables regeneration of existing outputs.
func WithOverwrite() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Tracks.OverwriteExisting = true
	}
}

// MediaDir returns the first media directory of a test config.
func MediaDir(cfg *config.Config) string {
	return cfg.Paths.MediaDirs[0]
}
