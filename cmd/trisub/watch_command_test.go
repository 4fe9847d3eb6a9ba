package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"trisub/internal/testsupport"
)

func TestWatchCommandMergesUntilCancelled(t *testing.T) {
	env := setupCLITestEnv(t)
	seedPair(t, env, "Movie")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", env.configPath, "watch"})
	cmd.SetContext(ctx)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Execute()
	}()

	outputPath := filepath.Join(testsupport.MediaDir(env.cfg), "Movie.srt")
	deadline := time.After(5 * time.Second)
	for {
		if _, err := os.Stat(outputPath); err == nil {
			break
		}
		select {
		case <-deadline:
			t.Fatal("watch never merged the seeded pair")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch execute: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not exit after cancellation")
	}
}
