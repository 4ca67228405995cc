package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centrality"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported centrality kinds",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, k := range centrality.Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
