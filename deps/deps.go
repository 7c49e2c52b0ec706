package deps

import (
	"fmt"

	"github.com/sunwei/siteconf/common/loggers"
	"github.com/sunwei/siteconf/config"
	"github.com/sunwei/siteconf/hugofs"
	"github.com/sunwei/siteconf/log"
	"github.com/sunwei/siteconf/markup"
	"github.com/sunwei/siteconf/minifiers"
	"github.com/sunwei/siteconf/publisher"
	"github.com/sunwei/siteconf/siteconfig"
)

// Deps holds dependencies used by many.
// There will be normally only one instance of deps in play
// at a given time, i.e. one per Site built.
type Deps struct {
	// The logger to use.
	Log loggers.Logger `json:"-"`

	// The resolved site configuration.
	Site siteconfig.SiteConfig

	// The content converters, keyed by markup name.
	ContentSpec markup.ConverterProvider `json:"-"`

	// The file systems to use.
	Fs *hugofs.Fs `json:"-"`

	// The build configuration to use, e.g. contentDir and minify settings.
	Cfg config.Provider `json:"-"`

	// Publishes to Fs.PublishDir.
	Publisher publisher.Publisher `json:"-"`

	// Whether published output is minified.
	MinifyOutput bool
}

// DepsCfg contains configuration options that can be used to configure
// the build on a global level, i.e. logging etc.
// Nil values will be given default values.
type DepsCfg struct {
	// The resolved site configuration.
	Site siteconfig.SiteConfig

	// The file systems to use.
	Fs *hugofs.Fs

	// The build configuration to use.
	Cfg config.Provider

	Logger loggers.Logger
}

// New initializes a Dep struct.
// Defaults are set for nil values.
func New(cfg DepsCfg) (*Deps, error) {
	if cfg.Cfg == nil {
		cfg.Cfg = config.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = loggers.NewDefault()
	}
	if cfg.Fs == nil {
		// Default to the production file system.
		cfg.Fs = hugofs.NewDefault(cfg.Cfg)
	}

	log.Process("New content Spec", "content converter provider inside")
	contentSpec, err := markup.NewConverterProvider(cfg.Site, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("create content converters: %w", err)
	}

	log.Process("New publisher", "minifiers and destination publisher")
	min, err := minifiers.New(cfg.Cfg)
	if err != nil {
		return nil, err
	}

	return &Deps{
		Log:          cfg.Logger,
		Site:         cfg.Site,
		ContentSpec:  contentSpec,
		Fs:           cfg.Fs,
		Cfg:          cfg.Cfg,
		Publisher:    publisher.NewDestinationPublisher(cfg.Fs.PublishDir, min),
		MinifyOutput: min.MinifyOutput,
	}, nil
}
