package config

const (
	defaultLogDir                = "~/.local/share/trisub/logs"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	defaultScanInterval          = 60
	defaultErrorRetryInterval    = 10
	defaultTranslitTimeoutSecond = 30
)

func defaultSourceSuffixes() []string {
	return []string{".zh", ".chs", ".chi", ".zho"}
}

func defaultTargetSuffixes() []string {
	return []string{".en", ".eng"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Tracks: Tracks{
			SourceSuffixes: defaultSourceSuffixes(),
			TargetSuffixes: defaultTargetSuffixes(),
		},
		Transliterator: Transliterator{
			TimeoutSeconds: defaultTranslitTimeoutSecond,
		},
		Workflow: Workflow{
			ScanInterval:       defaultScanInterval,
			ErrorRetryInterval: defaultErrorRetryInterval,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
