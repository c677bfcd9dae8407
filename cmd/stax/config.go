package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mgomes/stax/stax"
)

const defaultConfigName = ".stax.yml"

type cliConfig struct {
	RecursionLimit int    `yaml:"recursion_limit"`
	HistoryFile    string `yaml:"history_file"`
	HistorySize    int    `yaml:"history_size"`
	Prompt         string `yaml:"prompt"`
	Plain          bool   `yaml:"plain"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		HistoryFile: ".stax_history",
		HistorySize: 500,
		Prompt:      "stax> ",
	}
}

// loadConfig reads the named config file, or .stax.yml in the working
// directory when path is empty. A missing default file is not an error;
// unknown keys are.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigName
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.HistorySize <= 0 {
		cfg.HistorySize = defaultCLIConfig().HistorySize
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultCLIConfig().Prompt
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = defaultCLIConfig().HistoryFile
	}
	return cfg, nil
}

func (c cliConfig) machineConfig() stax.Config {
	return stax.Config{RecursionLimit: c.RecursionLimit}
}
