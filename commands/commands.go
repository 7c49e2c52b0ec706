// Package commands implements the siteconf command line.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/sunwei/siteconf/common/loggers"
	"github.com/sunwei/siteconf/common/maps"
	"github.com/sunwei/siteconf/log"
	"github.com/sunwei/siteconf/siteconfig"
)

// commandeer holds the state shared by the commands.
type commandeer struct {
	fs     afero.Fs
	out    io.Writer
	errOut io.Writer

	cfgFile string
	source  string
	verbose bool

	// Overrides of the config file.
	siteURL     string
	syntaxTheme string
	wrap        bool
	gfm         bool

	logger loggers.Logger
}

func newCommandeer(fs afero.Fs, out, errOut io.Writer) *commandeer {
	return &commandeer{fs: fs, out: out, errOut: errOut}
}

func (c *commandeer) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "siteconf",
		Short: "Resolve and build a static site configuration",
		Long: `siteconf resolves a site declaration (siteconfig.toml, .yaml or .json)
into a validated site configuration and builds the site with it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.initLogger()
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(c.out)
	cmd.SetErr(c.errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default: siteconfig.{toml,yaml,yml,json} in the source dir)")
	pf.StringVarP(&c.source, "source", "s", "", "filesystem path to read files relative from")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&c.siteURL, "siteURL", "", "override the site URL, e.g. https://staging.example.com")
	pf.StringVar(&c.syntaxTheme, "syntaxTheme", "", "override the code highlighting theme")
	pf.BoolVar(&c.wrap, "wrapLongLines", false, "override wrapping of long code lines")
	pf.BoolVar(&c.gfm, "gfm", false, "override extended (GitHub flavored) markdown")

	cmd.AddCommand(c.resolveCmd(), c.buildCmd())

	return cmd
}

func (c *commandeer) initLogger() {
	if c.verbose {
		c.logger = loggers.NewDebugLogger(c.errOut)
	} else {
		c.logger = loggers.NewWarningLogger(c.errOut)
	}
	log.SetLogger(c.logger)
}

func (c *commandeer) workingDir() (string, error) {
	if c.source != "" {
		return c.source, nil
	}
	return os.Getwd()
}

// flags returns the overrides set on the command line.
func (c *commandeer) flags(cmd *cobra.Command) maps.Params {
	flags := make(maps.Params)
	markdown := make(maps.Params)

	changed := cmd.Flags().Changed
	if changed("siteURL") {
		flags["siteURL"] = c.siteURL
	}
	if changed("syntaxTheme") {
		markdown["syntaxTheme"] = c.syntaxTheme
	}
	if changed("wrapLongLines") {
		markdown["wrapLongLines"] = c.wrap
	}
	if changed("gfm") {
		markdown["enableExtendedMarkdown"] = c.gfm
	}
	if len(markdown) > 0 {
		flags["markdown"] = markdown
	}

	return flags
}

func (c *commandeer) loadConfig(cmd *cobra.Command) (siteconfig.SiteConfig, string, error) {
	wd, err := c.workingDir()
	if err != nil {
		return siteconfig.SiteConfig{}, "", err
	}

	sc, err := siteconfig.LoadConfig(siteconfig.ConfigSourceDescriptor{
		Fs:         c.fs,
		Filename:   c.cfgFile,
		WorkingDir: wd,
		Flags:      c.flags(cmd),
		Logger:     c.logger,
	})

	return sc, wd, err
}

// Execute runs the command line with args and returns the exit code.
func Execute(args []string) int {
	return execute(afero.NewOsFs(), os.Stdout, os.Stderr, args)
}

func execute(fs afero.Fs, out, errOut io.Writer, args []string) int {
	cmd := newCommandeer(fs, out, errOut).rootCmd()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return 1
	}
	return 0
}
