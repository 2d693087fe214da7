package config

const (
	defaultProjectsDir     = "~/.local/share/framemill/projects"
	defaultPresetsDir      = "~/.local/share/framemill/presets"
	defaultDataDir         = "~/.local/share/framemill/data"
	defaultLogDir          = "~/.local/share/framemill/logs"
	defaultEncoderBinary   = "ffmpeg"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultHistoryMaxCount = 500
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsDir: defaultProjectsDir,
			PresetsDir:  defaultPresetsDir,
			DataDir:     defaultDataDir,
			LogDir:      defaultLogDir,
		},
		Encoder: Encoder{
			Binary: defaultEncoderBinary,
		},
		History: History{
			Enabled:    true,
			MaxEntries: defaultHistoryMaxCount,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
