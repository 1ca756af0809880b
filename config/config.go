// Package config loads hitch.Config from YAML files and reloads it when the
// file changes on disk.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/hitch"
)

// Load reads the YAML file at path, overlays it onto hitch.DefaultConfig and
// validates the result. Keys missing from the file keep their default value.
func Load(path string) (hitch.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return hitch.Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return hitch.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML data onto the defaults. Unknown keys are an error so
// that typos in tunables do not go unnoticed.
func Parse(data []byte) (hitch.Config, error) {
	cfg := hitch.DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return hitch.Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return hitch.Config{}, fmt.Errorf("invalid: %w", err)
	}
	return cfg, nil
}

// Write stores cfg as YAML at path, e.g. to seed a file with the defaults.
func Write(path string, cfg hitch.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
