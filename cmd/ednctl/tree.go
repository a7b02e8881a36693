package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	core "github.com/joshuapare/ednkit/edn"
	"github.com/joshuapare/ednkit/edn/printer"
	"github.com/joshuapare/ednkit/pkg/edn"
)

var treeMaxDepth int

func init() {
	cmd := newTreeCmd()
	addParseFlags(cmd)
	cmd.Flags().IntVar(&treeMaxDepth, "depth", 0, "Maximum display depth (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

var (
	styleColl   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleScalar = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleTag    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Render a parsed document as a colored tree",
		Long: `The tree command renders the structure of an EDN document with one
node per line.

Example:
  ednctl tree config.edn
  ednctl tree config.edn --depth 2 --no-color`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseOptions()
			if err != nil {
				return err
			}
			v, err := edn.ParseFile(args[0], opts)
			if err != nil {
				return err
			}
			var sb strings.Builder
			renderTree(&sb, v, 0)
			fmt.Print(sb.String())
			return nil
		},
	}
}

func paint(st lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return st.Render(s)
}

func renderTree(sb *strings.Builder, v *core.Value, depth int) {
	if treeMaxDepth > 0 && depth >= treeMaxDepth {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(paint(styleDim, "..."))
		sb.WriteByte('\n')
		return
	}
	pad := strings.Repeat("  ", depth)
	switch v.Kind() {
	case core.KindList, core.KindVector, core.KindSet:
		fmt.Fprintf(sb, "%s%s %s\n", pad,
			paint(styleColl, v.Kind().String()),
			paint(styleDim, fmt.Sprintf("(%d)", v.Count())))
		for i := 0; i < v.Count(); i++ {
			renderTree(sb, v.At(i), depth+1)
		}
	case core.KindMap:
		fmt.Fprintf(sb, "%s%s %s\n", pad,
			paint(styleColl, "map"),
			paint(styleDim, fmt.Sprintf("(%d)", v.Count())))
		for i := 0; i < v.Count(); i++ {
			fmt.Fprintf(sb, "%s  %s\n", pad, paint(styleKey, printer.Scalar(v.MapKeyAt(i))))
			renderTree(sb, v.MapValAt(i), depth+2)
		}
	case core.KindTagged:
		fmt.Fprintf(sb, "%s%s\n", pad, paint(styleTag, "#"+v.TagString()))
		renderTree(sb, v.Inner(), depth+1)
	default:
		fmt.Fprintf(sb, "%s%s\n", pad, paint(styleScalar, printer.Scalar(v)))
	}
}
