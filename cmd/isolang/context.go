package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"isolang/internal/config"
	"isolang/internal/logging"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool
	sessionID  string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
		sessionID:  uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// configValue returns the loaded config, or defaults when loading was skipped
// or failed.
func (c *commandContext) configValue() *config.Config {
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		return cfg
	}
	cfg := config.Default()
	return &cfg
}

func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// commandLogger returns the logger for cmd tagged with the component name
// and the invocation session ID.
func (c *commandContext) commandLogger(cmd *cobra.Command, component string) *slog.Logger {
	return logging.WithContext(c.requestContext(cmd), logging.NewComponentLogger(c.loggerValue(), component))
}

func (c *commandContext) requestContext(cmd *cobra.Command) context.Context {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	return logging.WithSessionID(base, c.sessionID)
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
