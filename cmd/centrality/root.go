package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "centrality",
	Short: "Rank graph vertices and edges by centrality",
	Long: `Centrality reads a graph from an edge-list file and ranks its
vertices (or edges) by a chosen centrality measure: degree, closeness,
betweenness, eigenvector, PageRank, or Katz.

Solver defaults (damping, alpha, beta, tolerance, max-iter, epsilon) can
be set in .centrality.yaml or via CENTRALITY_* environment variables;
flags always win.`,
}

// Execute runs the root command, printing any error to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .centrality.yaml)")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".centrality")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("CENTRALITY")
	// "max-iter" is addressable as CENTRALITY_MAX_ITER
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
