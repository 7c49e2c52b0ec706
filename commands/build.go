package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sunwei/siteconf/config"
	"github.com/sunwei/siteconf/deps"
	"github.com/sunwei/siteconf/helpers"
	"github.com/sunwei/siteconf/hugofs"
	"github.com/sunwei/siteconf/site"
)

func (c *commandeer) buildCmd() *cobra.Command {
	var (
		destination string
		contentDir  string
		pages       []string
		minify      bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site",
		Long: `Render the content files, then write the sitemap and the stylesheet
entry for the active extensions into the destination dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, wd, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			cfg := config.New()
			cfg.Set("workingDir", wd)
			cfg.Set("publishDir", destination)
			cfg.Set("contentDir", contentDir)
			if cmd.Flags().Changed("minify") {
				cfg.Set("minify", map[string]any{"minifyOutput": minify})
			}

			d, err := deps.New(deps.DepsCfg{
				Site:   sc,
				Fs:     hugofs.NewFrom(c.fs, cfg),
				Cfg:    cfg,
				Logger: c.logger,
			})
			if err != nil {
				return err
			}

			result, err := site.NewSite(d).Build(site.BuildCfg{
				ExtraPages: helpers.UniqueStringsReuse(pages),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pages            | %d\n", len(result.Pages))
			fmt.Fprintf(out, "Files            | %d\n", len(result.Files))
			for _, f := range result.Files {
				fmt.Fprintf(out, "  %s\n", f)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&destination, "destination", "d", hugofs.DefaultPublishDir, "filesystem path to write files to")
	flags.StringVarP(&contentDir, "contentDir", "c", hugofs.DefaultContentDir, "filesystem path to content directory")
	flags.StringSliceVar(&pages, "pages", nil, "extra page paths to list in the sitemap, e.g. /about/,/contact/")
	flags.BoolVar(&minify, "minify", false, "minify any supported output format (HTML, XML etc.)")

	return cmd
}
