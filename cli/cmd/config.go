package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nufmt/nufmt/internal/format"
)

// configFileName is the file LoadConfig searches for, same name `init`
// writes.
const configFileName = ".nufmt.yaml"

// LoadConfig searches startDir and each of its ancestors for a
// .nufmt.yaml, the way most formatters discover project configuration:
// closest directory wins. A tree with no config file at all formats with
// format.Default().
func LoadConfig(startDir string) (format.Config, error) {
	path, err := findConfigFile(startDir)
	if err != nil {
		return format.Config{}, err
	}
	if path == "" {
		return format.Default(), nil
	}
	return readConfigFile(path)
}

func findConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func readConfigFile(path string) (format.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return format.Config{}, err
	}
	cfg := format.Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return format.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return format.Config{}, err
	}
	return cfg, nil
}

// writeDefaultConfig writes format.Default(), marshaled as YAML, to
// dir/.nufmt.yaml. Used by the `init` subcommand; it refuses to clobber an
// existing file.
func writeDefaultConfig(dir string) (string, error) {
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return "", os.ErrExist
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	raw, err := yaml.Marshal(format.Default())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
