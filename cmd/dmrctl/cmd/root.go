// File: root.go
// Role: rootCmd, grounded on
// junjiewwang-perf-analysis/cmd/cli/cmd/root.go's PersistentPreRunE
// logger setup plus BinName()-derived dynamic Example string, and on
// thebtf-engram's cmd/worker/main.go for the zerolog ConsoleWriter
// setup itself.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dmrctl",
	Short: "Build and persist DMR/gene bipartite graphs and their biclique decomposition",
	Long: `dmrctl ingests per-timepoint DMR-gene interaction rows and an optional
biclique cover file, builds the bipartite interaction graph, decomposes it,
selects a dominating set of DMRs, and persists every derived structure
through a pluggable storage collaborator.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
		return nil
	},
}

// Execute adds all child commands to rootCmd and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")

	binName := BinName()
	rootCmd.Example = `  # Run a single timepoint against its row and cover files
  ` + binName + ` run --config dmrcore.yaml --timepoint wk1

  # Print the tool's version
  ` + binName + ` version`
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
