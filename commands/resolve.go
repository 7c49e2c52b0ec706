package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sunwei/siteconf/common/text"
	"github.com/sunwei/siteconf/parser/metadecoders"
)

func (c *commandeer) resolveCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved site configuration",
		Long: `Load the site configuration, apply defaults and command line overrides,
validate it and print the result with canonical keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := metadecoders.FormatFromString(format)
			if f == "" {
				return fmt.Errorf("unsupported format %q, use one of toml, yaml or json", format)
			}

			sc, _, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			b, err := metadecoders.Default.Marshal(sc.Map(), f)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), text.Line(string(b)))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml, yaml or json")

	return cmd
}
