package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/yourusername/video-downloader-go/internal/domain"
)

// LoadConfig builds the configuration from defaults overlaid with VDL_*
// environment variables. The tool deliberately has no config file.
func LoadConfig() (*domain.Config, error) {
	config := domain.DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("VDL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, config)

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Download.OutputDir = expandPath(config.Download.OutputDir)
	if config.Logging.OutputPath != "stdout" && config.Logging.OutputPath != "stderr" {
		config.Logging.OutputPath = expandPath(config.Logging.OutputPath)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults registers every key so AutomaticEnv can bind it.
func setDefaults(v *viper.Viper, config *domain.Config) {
	v.SetDefault("download.output_dir", config.Download.OutputDir)
	v.SetDefault("extractor.binary", config.Extractor.Binary)
	v.SetDefault("extractor.user_agent", config.Extractor.UserAgent)
	v.SetDefault("extractor.skip_cert_verify", config.Extractor.SkipCertVerify)
	v.SetDefault("notification.enabled", config.Notification.Enabled)
	v.SetDefault("notification.method", config.Notification.Method)
	v.SetDefault("logging.level", config.Logging.Level)
	v.SetDefault("logging.format", config.Logging.Format)
	v.SetDefault("logging.output_path", config.Logging.OutputPath)
}

func validateConfig(config *domain.Config) error {
	if config.Download.OutputDir == "" {
		return fmt.Errorf("download.output_dir must not be empty")
	}
	if config.Extractor.Binary == "" {
		return fmt.Errorf("extractor.binary must not be empty")
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", config.Logging.Format)
	}
	return nil
}

// expandPath expands ~ and environment variables in a path value.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}
