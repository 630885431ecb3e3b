package config

const (
	defaultDataDir     = "~/.local/share/reellog"
	defaultWatchedFile = "watched_movies.txt"
	defaultToWatchFile = "to_watch_movies.txt"
	defaultLogDir      = "~/.local/share/reellog/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultColorMode   = ColorAuto

	lockFileName = "reellog.lock"
	logFileName  = "reellog.log"
)

// Color modes accepted by display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:     defaultDataDir,
			WatchedFile: defaultWatchedFile,
			ToWatchFile: defaultToWatchFile,
			LogDir:      defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Display: Display{
			Color: defaultColorMode,
		},
	}
}
