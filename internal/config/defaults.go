package config

const (
	defaultConfigPath     = "~/.config/wordcloud/config.toml"
	defaultDataDir        = "~/.local/share/wordcloud"
	defaultLogDir         = "~/.local/share/wordcloud/logs"
	defaultTopN           = 50
	defaultFontScale      = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultDiscardLeading = true
	stopWordsEnv          = "WORDCLOUD_STOP_WORDS"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Analysis: Analysis{
			TopN: defaultTopN,
		},
		Ranking: Ranking{
			DiscardLeading: defaultDiscardLeading,
		},
		Cloud: Cloud{
			FontScale: defaultFontScale,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
