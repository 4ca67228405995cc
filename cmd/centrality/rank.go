package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/centrality"
	"github.com/katalvlaran/centrality/core"
)

var rankCmd = &cobra.Command{
	Use:   "rank [edge-list file]",
	Short: "Compute a centrality measure over an edge-list graph",
	Long: `Reads a graph from the given edge-list file ("-" for stdin) and
prints one "id<TAB>score" line per vertex, sorted by vertex ID.
The edge-betweenness kind prints "from<TAB>to<TAB>score" per edge.

With --top N, output switches to the N highest-scoring entries in
descending score order (ties broken by ID).`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

// solverKnobs are the flag/config keys resolved through viper.
var solverKnobs = []string{"damping", "alpha", "beta", "tolerance", "max-iter", "epsilon"}

func init() {
	defaults := centrality.DefaultOptions()

	rankCmd.Flags().StringP("kind", "k", "degree", "centrality kind (see `centrality kinds`)")
	rankCmd.Flags().Bool("directed", false, "treat edges as directed")
	rankCmd.Flags().Bool("weighted", false, "honor the third edge-list column as weight")
	rankCmd.Flags().Bool("loops", false, "permit self-loops in the input")
	rankCmd.Flags().Bool("normalized", true, "normalize scores where the measure defines it")
	rankCmd.Flags().Int("top", 0, "print only the N highest scores (0 = all, sorted by ID)")
	rankCmd.Flags().Float64("damping", defaults.Damping, "PageRank damping factor")
	rankCmd.Flags().Float64("alpha", defaults.Alpha, "Katz attenuation factor")
	rankCmd.Flags().Float64("beta", defaults.Beta, "Katz baseline term")
	rankCmd.Flags().Float64("tolerance", defaults.Tol, "power-iteration convergence tolerance")
	rankCmd.Flags().Int("max-iter", defaults.MaxIter, "power-iteration cap")
	rankCmd.Flags().Float64("epsilon", defaults.Eps, "weighted distance-tie tolerance")

	// Binding routes each knob through viper's precedence chain: a flag
	// set on the command line wins, then CENTRALITY_* env, then the
	// config file, then the flag's default.
	for _, knob := range solverKnobs {
		_ = viper.BindPFlag(knob, rankCmd.Flags().Lookup(knob))
	}

	rootCmd.AddCommand(rankCmd)
}

// rankOptions assembles Compute options. The solver knobs are read
// through viper at call time, after initConfig has loaded the config
// file and env; only the bound flags in init keep "flags always win"
// true.
func rankOptions(cmd *cobra.Command) []centrality.Option {
	opts := []centrality.Option{
		centrality.WithDamping(viper.GetFloat64("damping")),
		centrality.WithAlpha(viper.GetFloat64("alpha")),
		centrality.WithBeta(viper.GetFloat64("beta")),
		centrality.WithTolerance(viper.GetFloat64("tolerance")),
		centrality.WithMaxIter(viper.GetInt("max-iter")),
		centrality.WithEpsilon(viper.GetFloat64("epsilon")),
	}
	if normalized, _ := cmd.Flags().GetBool("normalized"); !normalized {
		opts = append(opts, centrality.WithNormalized(false))
	}

	return opts
}

func runRank(cmd *cobra.Command, args []string) error {
	kindName, _ := cmd.Flags().GetString("kind")
	kind, err := centrality.ParseKind(kindName)
	if err != nil {
		return err
	}

	g, err := loadGraph(cmd, args[0])
	if err != nil {
		return err
	}

	res, err := centrality.Compute(g, kind, rankOptions(cmd)...)
	if err != nil {
		return err
	}

	top, _ := cmd.Flags().GetInt("top")

	return writeResult(cmd.OutOrStdout(), res, top)
}

// graphOptions maps the topology flags to core graph options.
func graphOptions(cmd *cobra.Command) []core.GraphOption {
	var gopts []core.GraphOption
	if directed, _ := cmd.Flags().GetBool("directed"); directed {
		gopts = append(gopts, core.WithDirected(true))
	}
	if weighted, _ := cmd.Flags().GetBool("weighted"); weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	if loops, _ := cmd.Flags().GetBool("loops"); loops {
		gopts = append(gopts, core.WithLoops())
	}

	return gopts
}

// loadGraph opens the edge-list source and parses it under the flag-
// selected graph options.
func loadGraph(cmd *cobra.Command, path string) (*core.Graph, error) {
	var r io.ReadCloser
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return readEdgeList(r, graphOptions(cmd)...)
}

// line is one rendered output row: a key (vertex ID, or "from\tto" for
// edges) and its score.
type line struct {
	key   string
	score float64
}

// writeResult renders the measure outcome: by default every entry sorted
// by key; with top > 0 the highest `top` scores in descending order.
func writeResult(w io.Writer, res *centrality.Result, top int) error {
	var lines []line
	if res.Edges != nil {
		lines = make([]line, 0, len(res.Edges))
		for k, v := range res.Edges {
			lines = append(lines, line{key: k.From + "\t" + k.To, score: v})
		}
	} else {
		lines = make([]line, 0, len(res.Nodes))
		for k, v := range res.Nodes {
			lines = append(lines, line{key: k, score: v})
		}
	}

	if top > 0 {
		sort.Slice(lines, func(i, j int) bool {
			if lines[i].score != lines[j].score {
				return lines[i].score > lines[j].score
			}

			return lines[i].key < lines[j].key
		})
		if top < len(lines) {
			lines = lines[:top]
		}
	} else {
		sort.Slice(lines, func(i, j int) bool { return lines[i].key < lines[j].key })
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", l.key, strconv.FormatFloat(l.score, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return nil
}
