package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ednkit/pkg/edn"
	"github.com/joshuapare/ednkit/pkg/types"
)

func init() {
	cmd := newValidateCmd()
	addParseFlags(cmd)
	rootCmd.AddCommand(cmd)
}

type validateReport struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
	Line  int    `json:"line,omitempty"`
	Col   int    `json:"col,omitempty"`
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that files parse as EDN",
		Long: `The validate command parses each file and reports whether it is
well-formed EDN. The exit status is non-zero when any file fails.

Example:
  ednctl validate config.edn
  ednctl validate --json *.edn`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions()
			if err != nil {
				return err
			}
			failures := 0
			for _, path := range args {
				report := validateReport{File: path, Valid: true}
				if _, perr := edn.ParseFile(path, opts); perr != nil {
					failures++
					report.Valid = false
					report.Error = perr.Error()
					var pe *types.ParseError
					if errors.As(perr, &pe) {
						report.Code = pe.Code.String()
						report.Line = pe.Line
						report.Col = pe.Col
					}
				}
				if jsonOut {
					if jerr := printJSON(report); jerr != nil {
						return jerr
					}
					continue
				}
				if report.Valid {
					printInfo("%s: ok\n", path)
				} else {
					printError("%s: %s\n", path, report.Error)
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d file(s) failed validation", failures, len(args))
			}
			return nil
		},
	}
}
