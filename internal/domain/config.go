package domain

// Config represents the application configuration
type Config struct {
	Download     DownloadConfig     `mapstructure:"download"`
	Extractor    ExtractorConfig    `mapstructure:"extractor"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// DownloadConfig contains download-related configuration
type DownloadConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// ExtractorConfig configures how the external extractor binary is invoked
type ExtractorConfig struct {
	Binary         string `mapstructure:"binary"`
	UserAgent      string `mapstructure:"user_agent"`
	SkipCertVerify bool   `mapstructure:"skip_cert_verify"`
}

// NotificationConfig contains desktop notification configuration
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Method  string `mapstructure:"method"` // auto, osascript, notify-send
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Download: DownloadConfig{
			OutputDir: "downloads",
		},
		Extractor: ExtractorConfig{
			Binary:         "yt-dlp",
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			SkipCertVerify: true,
		},
		Notification: NotificationConfig{
			Enabled: true,
			Method:  "auto",
		},
		Logging: LoggingConfig{
			// Diagnostics go to stderr so they never corrupt the rendered UI.
			Level:      "warn",
			Format:     "console",
			OutputPath: "stderr",
		},
	}
}
