package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/vmlinuz719/stack85/vm"
)

// resolveImagePath picks the positional image argument when given,
// falling back to the config file's image path.
func resolveImagePath(args []string, cfg Config) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Image != "" {
		return cfg.Image, nil
	}
	return "", errors.New("no image given: pass a path or set image in the config file")
}

// loadImage reads path and, if it is a .s85 assembly source, assembles
// it into a flat image; anything else is treated as a raw byte image.
func loadImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if filepath.Ext(path) == ".s85" {
		return vm.Assemble(string(data))
	}
	return data, nil
}

func parseByteArg(s string) (byte, error) {
	n, err := parseUintArg(s, 8)
	return byte(n), err
}
