package config

import (
	"fmt"
	"strings"
)

// normalize expands path fields and canonicalizes suffix spellings so the
// rest of the system can compare them directly.
func (c *Config) normalize() error {
	expandedDirs := make([]string, 0, len(c.Paths.MediaDirs))
	for _, dir := range c.Paths.MediaDirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		expanded, err := expandPath(dir)
		if err != nil {
			return fmt.Errorf("media directory: %w", err)
		}
		expandedDirs = append(expandedDirs, expanded)
	}
	c.Paths.MediaDirs = expandedDirs

	logDir, err := expandPath(c.Paths.LogDir)
	if err != nil {
		return fmt.Errorf("log directory: %w", err)
	}
	c.Paths.LogDir = logDir

	c.Tracks.SourceSuffixes = normalizeSuffixes(c.Tracks.SourceSuffixes)
	c.Tracks.TargetSuffixes = normalizeSuffixes(c.Tracks.TargetSuffixes)
	c.Tracks.OutputSuffix = strings.ToLower(strings.TrimSpace(c.Tracks.OutputSuffix))
	if c.Tracks.OutputSuffix != "" && !strings.HasPrefix(c.Tracks.OutputSuffix, ".") {
		c.Tracks.OutputSuffix = "." + c.Tracks.OutputSuffix
	}

	c.Transliterator.Command = strings.TrimSpace(c.Transliterator.Command)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

func normalizeSuffixes(suffixes []string) []string {
	seen := make(map[string]struct{}, len(suffixes))
	out := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		suffix = strings.ToLower(strings.TrimSpace(suffix))
		if suffix == "" {
			continue
		}
		if !strings.HasPrefix(suffix, ".") {
			suffix = "." + suffix
		}
		if _, ok := seen[suffix]; ok {
			continue
		}
		seen[suffix] = struct{}{}
		out = append(out, suffix)
	}
	return out
}
