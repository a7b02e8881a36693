package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ednkit/pkg/edn"
	"github.com/joshuapare/ednkit/pkg/types"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool

	// Parse flags shared by the reading commands
	flagMode     string
	flagMaxDepth int
	flagNoMeta   bool
	flagNoRatios bool
	flagNoBigs   bool
	flagNoBlocks bool
	flagNoNSMaps bool
	flagNoSeps   bool
)

var rootCmd = &cobra.Command{
	Use:   "ednctl",
	Short: "Parse and inspect EDN documents",
	Long: `ednctl reads Extensible Data Notation documents and reports their
structure, validity, and statistics. Input files are memory-mapped and
read into one buffer; parsing is zero-copy over that buffer, with optional
grammar extensions.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// addParseFlags registers the reader-option flags on a reading command.
func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagMode, "mode", "passthrough",
		"Unknown-tag mode: passthrough, unwrap, or error")
	cmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "Maximum nesting depth (0 = default)")
	cmd.Flags().BoolVar(&flagNoMeta, "no-metadata", false, "Disable ^meta support")
	cmd.Flags().BoolVar(&flagNoRatios, "no-ratios", false, "Disable ratio literals")
	cmd.Flags().BoolVar(&flagNoBigs, "no-big-numerics", false, "Disable N and M suffixes")
	cmd.Flags().BoolVar(&flagNoBlocks, "no-text-blocks", false, "Disable triple-quoted text blocks")
	cmd.Flags().BoolVar(&flagNoNSMaps, "no-namespaced-maps", false, "Disable #:ns{} maps")
	cmd.Flags().BoolVar(&flagNoSeps, "no-digit-separators", false, "Disable '_' digit separators")
}

// parseOptions assembles reader options from the shared flags.
func parseOptions() (*edn.Options, error) {
	opts := edn.DefaultOptions()
	switch flagMode {
	case "", "passthrough":
		opts.TagMode = types.TagModePassthrough
	case "unwrap":
		opts.TagMode = types.TagModeUnwrap
	case "error":
		opts.TagMode = types.TagModeError
	default:
		return nil, fmt.Errorf("unknown tag mode %q", flagMode)
	}
	if flagMaxDepth > 0 {
		opts.MaxDepth = flagMaxDepth
	}
	off := func(on bool, bit types.Ext) {
		if on {
			opts.Extensions &^= bit
		}
	}
	off(flagNoMeta, types.ExtMetadata)
	off(flagNoRatios, types.ExtRatios)
	off(flagNoBigs, types.ExtBigNumerics)
	off(flagNoBlocks, types.ExtTextBlocks)
	off(flagNoNSMaps, types.ExtNamespacedMaps)
	off(flagNoSeps, types.ExtUnderscoreDigits)
	return &opts, nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func main() {
	execute()
}
