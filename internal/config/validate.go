package config

import (
	"errors"
	"fmt"

	"isolang/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLanguage(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLanguage() error {
	if c.Language.Fallback != "" {
		if _, ok := language.FromTwoLetter(c.Language.Fallback); !ok {
			return fmt.Errorf("language.fallback %q is not an ISO 639-1 code", c.Language.Fallback)
		}
	}
	for _, code := range c.Language.Preferred {
		if _, ok := language.Resolve(code); !ok {
			return fmt.Errorf("language.preferred: unknown language %q", code)
		}
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.Limit < 0 {
		return errors.New("search.limit must not be negative")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		return errors.New("catalog.path must be set")
	}
	return ensurePositiveMap(map[string]int{
		"catalog.lock_timeout": c.Catalog.LockTimeout,
	})
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
