package main

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	core "github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/pkg/edn"
)

func init() {
	cmd := newStatsCmd()
	addParseFlags(cmd)
	rootCmd.AddCommand(cmd)
}

type statsReport struct {
	File      string         `json:"file"`
	InputSize int64          `json:"input_size"`
	Nodes     int            `json:"nodes"`
	MaxDepth  int            `json:"max_depth"`
	ByKind    map[string]int `json:"by_kind"`
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Report node counts and nesting depth",
		Long: `The stats command parses a document and summarises it: total node
count, maximum nesting depth, and a per-kind breakdown.

Example:
  ednctl stats data.edn
  ednctl stats data.edn --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions()
			if err != nil {
				return err
			}
			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			v, err := edn.ParseFile(args[0], opts)
			if err != nil {
				return err
			}

			report := statsReport{
				File:      args[0],
				InputSize: info.Size(),
				ByKind:    make(map[string]int),
			}
			walk(v, 1, &report)

			if jsonOut {
				return printJSON(report)
			}
			printInfo("file:      %s\n", report.File)
			printInfo("size:      %d bytes\n", report.InputSize)
			printInfo("nodes:     %d\n", report.Nodes)
			printInfo("max depth: %d\n", report.MaxDepth)
			kinds := make([]string, 0, len(report.ByKind))
			for k := range report.ByKind {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				printInfo("  %-10s %d\n", k, report.ByKind[k])
			}
			return nil
		},
	}
}

func walk(v *core.Value, depth int, report *statsReport) {
	report.Nodes++
	report.ByKind[v.Kind().String()]++
	if depth > report.MaxDepth {
		report.MaxDepth = depth
	}
	switch v.Kind() {
	case core.KindList, core.KindVector, core.KindSet:
		for i := 0; i < v.Count(); i++ {
			walk(v.At(i), depth+1, report)
		}
	case core.KindMap:
		for i := 0; i < v.Count(); i++ {
			walk(v.MapKeyAt(i), depth+1, report)
			walk(v.MapValAt(i), depth+1, report)
		}
	case core.KindTagged:
		walk(v.Inner(), depth+1, report)
	}
}
