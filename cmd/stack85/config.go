package main

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vmlinuz719/stack85/vm"
)

// Config is read from an optional stack85.toml. A missing file is not
// an error: every field falls back to the core's own default.
type Config struct {
	MemorySize uint16 `toml:"memory_size"`
	Image      string `toml:"image"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{MemorySize: vm.DefaultMemSize}

	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MemorySize == 0 {
		cfg.MemorySize = vm.DefaultMemSize
	}
	return cfg, nil
}
