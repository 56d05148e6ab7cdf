package main

import (
	"strings"
	"sync"

	"vol/internal/config"
	"vol/internal/device"
)

// commandContext carries the backend and lazily-loaded configuration shared
// by the command implementation. Tests inject a fake backend and a private
// lock directory.
type commandContext struct {
	backend    device.Backend
	configFlag *string
	lockDir    string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(backend device.Backend, configFlag *string) *commandContext {
	return &commandContext{backend: backend, configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}
