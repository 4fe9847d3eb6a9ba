package workflow

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"trisub/internal/config"
	"trisub/internal/logging"
	"trisub/internal/queue"
	"trisub/internal/testsupport"
)

const sourceSRT = `1
00:00:01,000 --> 00:00:02,000
你

2
00:00:02,000 --> 00:00:03,000
好
`

const targetSRT = `1
00:00:01,200 --> 00:00:02,800
Hello
`

func newTestManager(t *testing.T, opts ...testsupport.ConfigOption) (*Manager, *config.Config, *queue.Store) {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	store, err := queue.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return NewManager(cfg, store, logging.NewNop()), cfg, store
}

func writePair(t *testing.T, cfg *config.Config, base string) (sourcePath, outputPath string) {
	t.Helper()
	media := testsupport.MediaDir(cfg)
	sourcePath = filepath.Join(media, base+".zh.srt")
	testsupport.WriteFile(t, sourcePath, sourceSRT)
	testsupport.WriteFile(t, filepath.Join(media, base+".en.srt"), targetSRT)
	return sourcePath, filepath.Join(media, base+".srt")
}

func TestRunOnceMergesDiscoveredPair(t *testing.T) {
	script := testsupport.WriteScript(t, t.TempDir(), "translit.sh", `cat >/dev/null; echo "ni hao"`)
	mgr, cfg, store := newTestManager(t, testsupport.WithTransliterator(script))
	_, outputPath := writePair(t, cfg, "Movie")

	if err := mgr.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read merged output: %v", err)
	}
	merged := string(data)
	// Both source spans overlap the single target span, so the whole pair
	// collapses to one trilingual block.
	for _, want := range []string{"你好", "ni hao", "Hello", "00:00:01,000 --> 00:00:03,000"} {
		if !strings.Contains(merged, want) {
			t.Errorf("merged output missing %q:\n%s", want, merged)
		}
	}

	items, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 queue item, got %d", len(items))
	}
	item := items[0]
	if item.Status != queue.StatusCompleted || item.SpanCount != 1 || item.WarningCount != 0 {
		t.Errorf("item = %+v", item)
	}
	if item.RunID == "" {
		t.Error("run id not recorded")
	}
}

func TestRunOnceSkipsUnchangedPair(t *testing.T) {
	mgr, cfg, store := newTestManager(t, testsupport.WithOverwrite())
	sourcePath, _ := writePair(t, cfg, "Movie")

	ctx := context.Background()
	if err := mgr.RunOnce(ctx); err != nil {
		t.Fatalf("first RunOnce: %v", err)
	}
	if err := mgr.RunOnce(ctx); err != nil {
		t.Fatalf("second RunOnce: %v", err)
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("unchanged pair re-queued: %d items", len(items))
	}

	// Touching the source gives the pair a new fingerprint, so it becomes
	// fresh work on the next pass.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(sourcePath, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := mgr.RunOnce(ctx); err != nil {
		t.Fatalf("third RunOnce: %v", err)
	}
	items, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected re-queue after source change, got %d items", len(items))
	}
}

func TestRunOnceRecordsTransliterationWarnings(t *testing.T) {
	script := testsupport.WriteScript(t, t.TempDir(), "translit.sh", `exit 1`)
	mgr, cfg, store := newTestManager(t, testsupport.WithTransliterator(script))
	_, outputPath := writePair(t, cfg, "Movie")

	if err := mgr.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read merged output: %v", err)
	}
	if !strings.Contains(string(data), "[transliteration unavailable]") {
		t.Errorf("marker missing from output:\n%s", data)
	}

	items, _ := store.List(context.Background())
	if len(items) != 1 || items[0].Status != queue.StatusCompleted || items[0].WarningCount != 1 {
		t.Errorf("items = %+v", items)
	}
}

func TestRunOnceMarksInvalidTrackFailed(t *testing.T) {
	mgr, cfg, store := newTestManager(t)
	media := testsupport.MediaDir(cfg)

	// Zero-duration span: discovery still pairs the files, matching rejects
	// the track.
	testsupport.WriteFile(t, filepath.Join(media, "Broken.zh.srt"), `1
00:00:01,000 --> 00:00:01,000
你
`)
	testsupport.WriteFile(t, filepath.Join(media, "Broken.en.srt"), targetSRT)
	writePair(t, cfg, "Fine")

	if err := mgr.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	items, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	byBase := map[string]*queue.Item{}
	for _, item := range items {
		byBase[item.BaseName] = item
	}
	broken := byBase["Broken"]
	if broken == nil || broken.Status != queue.StatusFailed || broken.ErrorMessage == "" {
		t.Errorf("broken item = %+v", broken)
	}
	// One bad pair must not stop the queue from draining.
	fine := byBase["Fine"]
	if fine == nil || fine.Status != queue.StatusCompleted {
		t.Errorf("fine item = %+v", fine)
	}
	if _, err := os.Stat(filepath.Join(media, "Broken.srt")); !os.IsNotExist(err) {
		t.Error("failed merge must not leave an output file")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	mgr, cfg, _ := newTestManager(t)
	writePair(t, cfg, "Movie")

	ctx := context.Background()
	if err := mgr.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !mgr.Running() {
		t.Error("manager not running after Start")
	}
	if err := mgr.Start(ctx); err == nil {
		t.Error("second Start must fail while running")
	}

	deadline := time.After(5 * time.Second)
	outputPath := filepath.Join(testsupport.MediaDir(cfg), "Movie.srt")
	for {
		if _, err := os.Stat(outputPath); err == nil {
			break
		}
		select {
		case <-deadline:
			t.Fatal("merged output never appeared")
		case <-time.After(10 * time.Millisecond):
		}
	}

	mgr.Stop()
	if mgr.Running() {
		t.Error("manager still running after Stop")
	}
	mgr.Stop()
}
