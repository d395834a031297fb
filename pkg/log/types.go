package log

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // "production" or "development"
	Encoding     string // "json" or "console"
	ColorEnabled bool

	// Output selects the sink: "stdout" (default), "stderr" or "file".
	Output string

	// File rotation, used when Output is "file".
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}
