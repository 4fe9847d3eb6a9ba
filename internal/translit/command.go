package translit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Command transliterates text by piping it through an external program.
type Command struct {
	// Path is the executable to run.
	Path string
	// Args are passed before the text arrives on stdin.
	Args []string
	// Timeout bounds a single invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds a single transliterator invocation.
const DefaultTimeout = 30 * time.Second

// Transliterate runs the configured command with text on stdin and returns
// the trimmed stdout. Empty output is treated as a failure so the merge
// builder substitutes its marker instead of emitting a blank line.
func (c Command) Transliterate(text string) (string, error) {
	if strings.TrimSpace(c.Path) == "" {
		return "", errors.New("transliterator command not configured")
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(norm.NFC.String(text))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("transliterator timed out after %s", timeout)
		}
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("transliterator: %w: %s", err, detail)
		}
		return "", fmt.Errorf("transliterator: %w", err)
	}

	result := strings.TrimSpace(stdout.String())
	if result == "" {
		return "", errors.New("transliterator produced no output")
	}
	return result, nil
}
