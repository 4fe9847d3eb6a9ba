package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTracks(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if len(c.Paths.MediaDirs) == 0 {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/trisub/config.toml"
		}
		return fmt.Errorf("paths.media_dirs must list at least one directory. Edit %s (create with 'trisub config init')", defaultPath)
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateTracks() error {
	if len(c.Tracks.SourceSuffixes) == 0 {
		return errors.New("tracks.source_suffixes must list at least one suffix")
	}
	if len(c.Tracks.TargetSuffixes) == 0 {
		return errors.New("tracks.target_suffixes must list at least one suffix")
	}
	targetSet := make(map[string]struct{}, len(c.Tracks.TargetSuffixes))
	for _, suffix := range c.Tracks.TargetSuffixes {
		targetSet[suffix] = struct{}{}
	}
	for _, suffix := range c.Tracks.SourceSuffixes {
		if _, ok := targetSet[suffix]; ok {
			return fmt.Errorf("suffix %q appears in both tracks.source_suffixes and tracks.target_suffixes", suffix)
		}
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.ScanInterval <= 0 {
		return errors.New("workflow.scan_interval must be positive")
	}
	if c.Workflow.ErrorRetryInterval <= 0 {
		return errors.New("workflow.error_retry_interval must be positive")
	}
	if c.Transliterator.TimeoutSeconds <= 0 {
		return errors.New("transliterator.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
