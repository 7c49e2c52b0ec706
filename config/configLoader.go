package config

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/sunwei/siteconf/parser/metadecoders"
)

var (
	// ValidConfigFileExtensions are the config file extensions FromFile
	// understands, in lookup order.
	ValidConfigFileExtensions = []string{"toml", "yaml", "yml", "json"}
)

// FromConfigString creates a config from the given YAML, JSON or TOML config. This is useful in tests.
func FromConfigString(config, configType string) (Provider, error) {
	m, err := metadecoders.Default.UnmarshalToMap([]byte(config), metadecoders.FormatFromString(configType))
	if err != nil {
		return nil, err
	}
	return NewFrom(m), nil
}

// FromFileToMap is the same as FromFile, but it returns the config values
// as a simple map.
func FromFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	return loadConfigFromFile(fs, filename)
}

func loadConfigFromFile(fs afero.Fs, filename string) (map[string]any, error) {
	m, err := metadecoders.Default.UnmarshalFileToMap(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", filename, err)
	}
	return m, nil
}

// FromFile loads the configuration from the given filename.
func FromFile(fs afero.Fs, filename string) (Provider, error) {
	m, err := loadConfigFromFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return NewFrom(m), nil
}
