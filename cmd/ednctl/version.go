package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut {
				return printJSON(map[string]string{
					"version": rootCmd.Version,
					"go":      runtime.Version(),
				})
			}
			fmt.Printf("ednctl %s (%s)\n", rootCmd.Version, runtime.Version())
			return nil
		},
	}
}
