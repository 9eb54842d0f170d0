package config

const (
	defaultFallbackLanguage   = "en"
	defaultSearchLimit        = 20
	defaultCatalogPath        = "~/.local/share/isolang/languages.db"
	defaultCatalogLockTimeout = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Language: Language{
			Fallback:  defaultFallbackLanguage,
			Preferred: []string{defaultFallbackLanguage},
		},
		Search: Search{
			Limit: defaultSearchLimit,
		},
		Catalog: Catalog{
			Path:        defaultCatalogPath,
			LockTimeout: defaultCatalogLockTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
