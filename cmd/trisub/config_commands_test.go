package main

import (
	"os"
	"path/filepath"
	"testing"

	"trisub/internal/config"
)

func TestConfigInit(t *testing.T) {
	setupCLITestEnv(t)

	// config init runs without an existing config file.
	out, _, err := runCLI(t, []string{"config", "init"}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample config")

	path, err := config.DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	_, _, err = runCLI(t, []string{"config", "init"}, "")
	if err == nil {
		t.Fatal("expected error when config already exists")
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--force"}, ""); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "media_dirs")
	requireContains(t, out, filepath.Base(env.cfg.Paths.LogDir))
	requireContains(t, out, "source_suffixes")
}

func TestMissingConfigFailsEarly(t *testing.T) {
	setupCLITestEnv(t)

	// HOME points at an empty directory, so no config resolves and the
	// command must fail before touching the queue.
	_, _, err := runCLI(t, []string{"queue", "status"}, "")
	if err == nil {
		t.Fatal("expected error without a usable config")
	}
}
