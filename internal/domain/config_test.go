package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.NotNil(t, config)
	assert.Equal(t, "downloads", config.Download.OutputDir)
	assert.Equal(t, "yt-dlp", config.Extractor.Binary)
	assert.NotEmpty(t, config.Extractor.UserAgent)
	assert.True(t, config.Extractor.SkipCertVerify)
	assert.True(t, config.Notification.Enabled)
	assert.Equal(t, "auto", config.Notification.Method)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
	assert.Equal(t, "stderr", config.Logging.OutputPath)
}
