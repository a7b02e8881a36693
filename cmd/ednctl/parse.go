package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ednkit/edn/printer"
	"github.com/joshuapare/ednkit/pkg/edn"
)

func init() {
	cmd := newParseCmd()
	addParseFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an EDN document and print its tree",
		Long: `The parse command reads one EDN form from a file and prints the
resulting tree.

Example:
  ednctl parse config.edn
  ednctl parse config.edn --json
  ednctl parse data.edn --mode error --no-ratios`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions()
			if err != nil {
				return err
			}
			printVerbose("parsing %s\n", args[0])
			v, err := edn.ParseFile(args[0], opts)
			if err != nil {
				return err
			}
			format := printer.FormatText
			if jsonOut {
				format = printer.FormatJSON
			}
			return printer.Print(os.Stdout, v, printer.Options{
				Format:   format,
				ShowMeta: verbose,
			})
		},
	}
}
