package config

const (
	defaultDownloadDir    = "downloads"
	defaultOutputFile     = "output.mkv"
	defaultFFmpegBinary   = "ffmpeg"
	defaultMkvmergeBinary = "mkvmerge"
	defaultUserAgent      = "hlsgrab/1.0"
	defaultTimeoutSeconds = 30
	defaultHistoryPath    = "~/.local/share/hlsgrab/history.db"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DownloadDir: defaultDownloadDir,
			OutputFile:  defaultOutputFile,
		},
		Tools: Tools{
			FFmpeg:   defaultFFmpegBinary,
			Mkvmerge: defaultMkvmergeBinary,
		},
		Fetch: Fetch{
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
