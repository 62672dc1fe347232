package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type demoConfig struct {
	Capacity    int
	Prompt      string
	Placeholder string
	Text        string
	LogFile     string
}

type fileConfig struct {
	Capacity    int    `toml:"capacity"`
	Prompt      string `toml:"prompt"`
	Placeholder string `toml:"placeholder"`
	Text        string `toml:"text"`
	LogFile     string `toml:"log_file"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Capacity:    32,
		Prompt:      "> ",
		Placeholder: "type something",
		LogFile:     "slicestr-demo.log",
	}
}

// loadConfig overlays the keys present in the TOML file at path onto
// defaultConfig. An empty path returns the defaults.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return demoConfig{}, fmt.Errorf("load demo config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return demoConfig{}, fmt.Errorf("load demo config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("capacity") {
		if raw.Capacity <= 0 {
			return demoConfig{}, fmt.Errorf("capacity must be positive, got %d", raw.Capacity)
		}
		cfg.Capacity = raw.Capacity
	}
	if meta.IsDefined("prompt") {
		cfg.Prompt = raw.Prompt
	}
	if meta.IsDefined("placeholder") {
		cfg.Placeholder = raw.Placeholder
	}
	if meta.IsDefined("text") {
		cfg.Text = raw.Text
	}
	if meta.IsDefined("log_file") {
		cfg.LogFile = strings.TrimSpace(raw.LogFile)
	}
	return cfg, nil
}
