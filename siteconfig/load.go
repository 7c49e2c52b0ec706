package siteconfig

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/sunwei/siteconf/common/loggers"
	"github.com/sunwei/siteconf/common/maps"
	"github.com/sunwei/siteconf/config"
	"github.com/sunwei/siteconf/extensions"
	"github.com/sunwei/siteconf/log"
)

// DefaultConfigName is the base name looked for when no filename is given.
const DefaultConfigName = "siteconfig"

// ConfigSourceDescriptor describes where to find the config (e.g. siteconfig.toml etc.).
type ConfigSourceDescriptor struct {
	Fs afero.Fs

	// Path to the config file to use, e.g. /my/project/siteconfig.toml.
	// If empty, siteconfig.{toml,yaml,yml,json} is looked up in WorkingDir.
	Filename string

	// The project's working dir. Relative filenames are resolved against it.
	WorkingDir string

	// Flags holds values that override the file, e.g. from the command line.
	Flags maps.Params

	// Registry of known extensions. Defaults to extensions.Default.
	Registry *extensions.Registry

	Logger loggers.Logger
}

func (d ConfigSourceDescriptor) configFilename() string {
	if d.Filename == "" || filepath.IsAbs(d.Filename) {
		return d.Filename
	}
	return filepath.Join(d.WorkingDir, d.Filename)
}

type configLoader struct {
	cfg config.Provider
	ConfigSourceDescriptor
}

func (l *configLoader) loadConfig() (string, error) {
	filename := l.configFilename()
	if filename == "" {
		var err error
		if filename, err = l.findConfigFile(); err != nil {
			return "", err
		}
	}

	m, err := config.FromFileToMap(l.Fs, filename)
	if err != nil {
		return filename, err
	}

	normalizeAliases(m)
	l.cfg = config.NewFrom(m)

	return filename, nil
}

func (l *configLoader) findConfigFile() (string, error) {
	for _, ext := range config.ValidConfigFileExtensions {
		filename := filepath.Join(l.WorkingDir, DefaultConfigName+"."+ext)
		exists, err := afero.Exists(l.Fs, filename)
		if err != nil {
			return "", err
		}
		if exists {
			return filename, nil
		}
	}
	return "", fmt.Errorf("no %s.{%s} found in %q", DefaultConfigName, "toml,yaml,yml,json", l.WorkingDir)
}

// applyConfigFlags layers the flags on top of the loaded file.
func (l *configLoader) applyConfigFlags() {
	if len(l.Flags) == 0 {
		return
	}
	flags := l.Flags.Clone()
	maps.PrepareParams(flags)
	normalizeAliases(flags)
	l.cfg = config.NewCompositeConfig(l.cfg, config.NewFrom(flags))
}

// applyConfigDefaults fills in the canonical keys the file leaves unset.
func (l *configLoader) applyConfigDefaults() {
	l.cfg.SetDefaults(maps.Params{
		"markdown": maps.Params{
			"syntaxTheme":            DefaultSyntaxTheme,
			"wrapLongLines":          DefaultWrapLongLines,
			"enableExtendedMarkdown": DefaultEnableExtendedMarkdown,
			"smartypants":            DefaultSmartypants,
			"headingIDType":          DefaultHeadingIDType,
		},
		"style": maps.Params{
			"injectBaseStyles": DefaultInjectBaseStyles,
		},
	})
}

// LoadConfig loads the site configuration file described by d, applies
// defaults and resolves it. Any failure to read or decode the file is
// reported as an *InvalidConfigError on the file.
func LoadConfig(d ConfigSourceDescriptor) (SiteConfig, error) {
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}

	l := &configLoader{ConfigSourceDescriptor: d}

	log.Process("LoadConfig", "read config file")
	filename, err := l.loadConfig()
	if err != nil {
		return SiteConfig{}, &InvalidConfigError{Field: "config", Value: filename, Err: err}
	}

	log.Process("LoadConfig", "apply config defaults")
	l.applyConfigDefaults()

	log.Process("LoadConfig", "apply config flags")
	l.applyConfigFlags()

	decl, err := DecodeDeclaration(l.cfg)
	if err != nil {
		return SiteConfig{}, err
	}

	return NewResolver(d.Registry, d.Logger).Resolve(decl)
}
