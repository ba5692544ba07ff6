package main

import (
	"github.com/BurntSushi/toml"
)

// config is bsbcat's optional on-disk configuration: default bus
// addresses so encode-get/encode-set don't need --dest/--src on every
// invocation.
type config struct {
	DefaultDestination uint8 `toml:"default_destination"`
	DefaultSource      uint8 `toml:"default_source"`
	Verbose            bool  `toml:"verbose"`
}

// loadConfig reads a TOML config file. A missing path is not an error:
// it just yields the zero config.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
