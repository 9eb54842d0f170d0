package config

import (
	"fmt"
	"os"
	"strings"

	"isolang/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeLanguage()
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeLanguage() {
	c.Language.Fallback = strings.ToLower(strings.TrimSpace(c.Language.Fallback))
	c.Language.Preferred = language.NormalizeList(c.Language.Preferred)
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv("ISOLANG_CATALOG_PATH"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.Path = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Catalog.Path) == "" {
		c.Catalog.Path = defaultCatalogPath
	}
	var err error
	if c.Catalog.Path, err = expandPath(strings.TrimSpace(c.Catalog.Path)); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("ISOLANG_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
