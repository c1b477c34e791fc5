// Package main provides the CLI for tabsynth, a synthetic tabular data
// generator. It produces datasets from YAML schemas or one-line prompts
// and augments existing datasets with statistically consistent rows.
//
// Usage:
//
//	tabsynth generate --schema people.yaml --rows 100 -o people.csv
//	tabsynth prompt "50 rows, columns: name string, age int 20-60"
//	tabsynth augment -i people.csv --rows 200 --strategy age=perturb
//	tabsynth types                # List column types and strategies
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Database drivers
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/synthlab/tabsynth/internal/cli"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	configFile  string
	seedFlag    uint64
	seedFlagSet bool
	plainFlag   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tabsynth",
		Short:   "Synthetic tabular data generator",
		Long:    `tabsynth generates realistic tabular datasets from declarative schemas or one-line prompts, and augments existing datasets with statistically consistent synthetic rows.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// An explicit --seed wins even when it is 0.
			seedFlagSet = cmd.Flags().Changed("seed")
			if plainFlag {
				cli.SetDefault(&cli.Config{Mode: cli.ModePlain, Writer: os.Stdout})
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "tabsynth.yaml", "Path to config file")
	rootCmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Random seed for reproducible output (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Disable colored output")

	rootCmd.AddCommand(
		generateCmd(),
		promptCmd(),
		augmentCmd(),
		typesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}
