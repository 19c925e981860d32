package main

import (
	"log/slog"
	"strings"
	"sync"

	"longbox/internal/config"
	"longbox/internal/library"
	"longbox/internal/logging"
	"longbox/internal/metroninfo"
	"longbox/internal/tagformat"
)

// commandContext lazily wires shared dependencies for subcommands.
type commandContext struct {
	configFlag *string
	formatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	registryOnce sync.Once
	registry     *tagformat.Registry
	registryErr  error
}

func newCommandContext(configFlag, formatFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		formatFlag: formatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// format resolves the tag format selected by --format.
func (c *commandContext) format() (tagformat.Format, error) {
	c.registryOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.registryErr = err
			return
		}
		logger, err := c.ensureLogger()
		if err != nil {
			c.registryErr = err
			return
		}
		registry := tagformat.NewRegistry()
		if err := registry.Register(metroninfo.New(logger, metroninfo.WithPriceCountry(cfg.Tags.PriceCountry))); err != nil {
			c.registryErr = err
			return
		}
		c.registry = registry
	})
	if c.registryErr != nil {
		return nil, c.registryErr
	}
	id := metroninfo.FormatID
	if c.formatFlag != nil && strings.TrimSpace(*c.formatFlag) != "" {
		id = strings.TrimSpace(*c.formatFlag)
	}
	return c.registry.Lookup(id)
}

// openStore opens the library index; the caller closes it.
func (c *commandContext) openStore() (*library.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return library.Open(cfg)
}

// openScanner builds a scanner over a fresh store; the caller closes the
// returned store.
func (c *commandContext) openScanner() (*library.Scanner, *library.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	format, err := c.format()
	if err != nil {
		return nil, nil, err
	}
	store, err := library.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	scanner, err := library.NewScanner(cfg, store, format, logger)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return scanner, store, nil
}
