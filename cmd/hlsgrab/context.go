package main

import (
	"log/slog"

	"hlsgrab/internal/config"
	"hlsgrab/internal/logging"
)

// commandContext lazily resolves configuration and logging shared by all
// subcommands.
type commandContext struct {
	configFlag *string
	levelFlag  *string
	formatFlag *string

	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

func newCommandContext(configFlag, levelFlag, formatFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		levelFlag:  levelFlag,
		formatFlag: formatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	var path string
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolvedPath, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.cfgPath = resolvedPath
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if c.levelFlag != nil && *c.levelFlag != "" {
		level = *c.levelFlag
	}
	format := cfg.Logging.Format
	if c.formatFlag != nil && *c.formatFlag != "" {
		format = *c.formatFlag
	}

	logger, err := logging.New(logging.Options{Level: level, Format: format})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}
