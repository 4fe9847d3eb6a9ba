package translit

import (
	"strings"
	"testing"
	"time"

	"trisub/internal/testsupport"
)

func TestCommandTransliterate(t *testing.T) {
	dir := t.TempDir()
	script := testsupport.WriteScript(t, dir, "translit.sh", `tr '[:lower:]' '[:upper:]'`)

	cmd := Command{Path: script}
	got, err := cmd.Transliterate("ni hao")
	if err != nil {
		t.Fatalf("Transliterate: %v", err)
	}
	if got != "NI HAO" {
		t.Errorf("got %q, want %q", got, "NI HAO")
	}
}

func TestCommandTrimsOutput(t *testing.T) {
	dir := t.TempDir()
	script := testsupport.WriteScript(t, dir, "translit.sh", `cat; echo`)

	cmd := Command{Path: script}
	got, err := cmd.Transliterate("  ni hao\n")
	if err != nil {
		t.Fatalf("Transliterate: %v", err)
	}
	if got != "ni hao" {
		t.Errorf("got %q", got)
	}
}

func TestCommandFailureIncludesStderr(t *testing.T) {
	dir := t.TempDir()
	script := testsupport.WriteScript(t, dir, "translit.sh", `echo "unmapped character" >&2; exit 3`)

	cmd := Command{Path: script}
	_, err := cmd.Transliterate("你好")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unmapped character") {
		t.Errorf("error %q missing stderr detail", err)
	}
}

func TestCommandEmptyOutputIsError(t *testing.T) {
	dir := t.TempDir()
	script := testsupport.WriteScript(t, dir, "translit.sh", `exit 0`)

	cmd := Command{Path: script}
	_, err := cmd.Transliterate("你好")
	if err == nil {
		t.Fatal("expected error for empty output")
	}
}

func TestCommandTimeout(t *testing.T) {
	dir := t.TempDir()
	script := testsupport.WriteScript(t, dir, "translit.sh", `sleep 5`)

	cmd := Command{Path: script, Timeout: 50 * time.Millisecond}
	_, err := cmd.Transliterate("你好")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("error %q, want timeout", err)
	}
}

func TestCommandUnconfigured(t *testing.T) {
	var cmd Command
	if _, err := cmd.Transliterate("你好"); err == nil {
		t.Fatal("expected error for empty command path")
	}
}

func TestDisabledReturnsNothing(t *testing.T) {
	got, err := Disabled("你好")
	if err != nil || got != "" {
		t.Errorf("Disabled = %q, %v", got, err)
	}
}
