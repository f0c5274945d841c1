package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain argument",
			input:    "-f",
			expected: "-f",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "''",
		},
		{
			name:     "path with spaces",
			input:    "/tmp/path with spaces",
			expected: "'/tmp/path with spaces'",
		},
		{
			name:     "output template",
			input:    "downloads/%(title)s.%(ext)s",
			expected: "'downloads/%(title)s.%(ext)s'",
		},
		{
			name:     "single quote",
			input:    "it's",
			expected: "'it'\"'\"'s'",
		},
		{
			name:     "url with query",
			input:    "https://www.youtube.com/watch?v=abc&t=1",
			expected: "'https://www.youtube.com/watch?v=abc&t=1'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShellEscape(tt.input))
		})
	}
}

func TestShellEscapeCommand(t *testing.T) {
	cmd := ShellEscapeCommand("yt-dlp", "-o", "downloads/%(title)s.%(ext)s", "https://youtu.be/x")

	assert.Equal(t, "yt-dlp -o 'downloads/%(title)s.%(ext)s' https://youtu.be/x", cmd)
}
