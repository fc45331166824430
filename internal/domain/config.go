package domain

import "time"

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
	Download  DownloadConfig  `mapstructure:"download"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Progress  ProgressConfig  `mapstructure:"progress"`
	History   HistoryConfig   `mapstructure:"history"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ExtractorConfig contains extraction-engine configuration
type ExtractorConfig struct {
	Binary     string `mapstructure:"binary"`
	CookieFile string `mapstructure:"cookie_file"`
	UserAgent  string `mapstructure:"user_agent"`
}

// DownloadConfig contains download orchestration configuration
type DownloadConfig struct {
	// TempDir roots per-request workspaces; empty means the OS default.
	TempDir string `mapstructure:"temp_dir"`

	// ItemDelay is the pacing delay inserted between batch items to avoid
	// tripping anti-automation defenses on the upstream source.
	ItemDelay time.Duration `mapstructure:"item_delay"`

	// PlaylistPreviewLimit caps the number of collection children returned
	// by the info endpoint.
	PlaylistPreviewLimit int `mapstructure:"playlist_preview_limit"`
}

// AudioConfig contains audio transcode configuration
type AudioConfig struct {
	Format  string `mapstructure:"format"`
	Bitrate string `mapstructure:"bitrate"`
}

// ProgressConfig contains progress-tracker configuration
type ProgressConfig struct {
	// Retention is how long a finished job's progress entry stays readable
	// before eviction.
	Retention time.Duration `mapstructure:"retention"`
}

// HistoryConfig contains download-history configuration
type HistoryConfig struct {
	DatabasePath string `mapstructure:"database_path"`
	RecentLimit  int    `mapstructure:"recent_limit"`
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
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Extractor: ExtractorConfig{
			Binary:     "yt-dlp",
			CookieFile: "$HOME/.mediagrab/cookies.txt",
			UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		},
		Download: DownloadConfig{
			TempDir:              "",
			ItemDelay:            time.Second,
			PlaylistPreviewLimit: 10,
		},
		Audio: AudioConfig{
			Format:  "mp3",
			Bitrate: "192",
		},
		Progress: ProgressConfig{
			Retention: 5 * time.Minute,
		},
		History: HistoryConfig{
			DatabasePath: "$HOME/.mediagrab/history.db",
			RecentLimit:  50,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stdout",
		},
	}
}
