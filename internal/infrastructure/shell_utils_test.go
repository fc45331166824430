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
			name:     "plain path",
			input:    "/tmp/simple/path",
			expected: "/tmp/simple/path",
		},
		{
			name:     "path with spaces",
			input:    "/tmp/path with spaces",
			expected: "'/tmp/path with spaces'",
		},
		{
			name:     "embedded single quote",
			input:    "/tmp/it's a test",
			expected: `'/tmp/it'"'"'s a test'`,
		},
		{
			name:     "output template",
			input:    "%(title)s.%(ext)s",
			expected: "'%(title)s.%(ext)s'",
		},
		{
			name:     "url with query params",
			input:    "https://example.com/watch?v=abc&t=10",
			expected: "'https://example.com/watch?v=abc&t=10'",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShellEscape(tt.input))
		})
	}
}

func TestShellEscapeCommand(t *testing.T) {
	result := ShellEscapeCommand("yt-dlp",
		"-o", "%(title)s.%(ext)s",
		"--cookies", "/tmp/my cookies/cookies.txt",
		"https://example.com/watch?v=abc")

	assert.Equal(t,
		"yt-dlp -o '%(title)s.%(ext)s' --cookies '/tmp/my cookies/cookies.txt' 'https://example.com/watch?v=abc'",
		result)
}

func TestIsShellSpecialChar(t *testing.T) {
	for _, c := range " \t'\"$`\\!*?[](){}|;<>&~#%\n\r" {
		assert.True(t, isShellSpecialChar(c), "expected %q to be special", c)
	}
	for _, c := range "abcABC123_-./:@=+" {
		assert.False(t, isShellSpecialChar(c), "expected %q to not be special", c)
	}
}
