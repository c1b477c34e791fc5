package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/synthlab/tabsynth/internal/tui"
)

// augmentCmd grows an existing CSV dataset with synthetic rows.
func augmentCmd() *cobra.Command {
	var (
		inPath      string
		rows        int
		outPath     string
		table       string
		strategies  []string
		interactive bool
		manifest    bool
		preview     int
	)

	cmd := &cobra.Command{
		Use:   "augment",
		Short: "Append synthetic rows to an existing dataset",
		Long: `Append statistically consistent synthetic rows to an existing CSV
dataset. Numeric columns default to sampling from a fitted Normal
distribution, string columns resample observed values with occasional
novel labels, and date columns bootstrap existing values. Identifier
and email columns are recomputed so they stay consistent.`,
		Example: `  tabsynth augment -i people.csv --rows 200 -o more.csv
  tabsynth augment -i people.csv --rows 50 --strategy age=perturb --strategy city=existing
  tabsynth augment -i people.csv --rows 50 --interactive -o more.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			ds, err := client.LoadDataset(inPath)
			if err != nil {
				return err
			}

			chosen, err := parseStrategyFlags(strategies)
			if err != nil {
				return err
			}
			if interactive {
				picked, err := tui.PickStrategies(ds)
				if err != nil {
					return err
				}
				if picked == nil {
					return nil // cancelled
				}
				for col, s := range picked {
					chosen[col] = s.String()
				}
			}

			out, err := client.Augment(ds, rows, chosen)
			if err != nil {
				return err
			}
			return deliver(out, cfg, "augment", outPath, table, manifest, preview)
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "Input CSV dataset (required)")
	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of rows to append")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output CSV path")
	cmd.Flags().StringVarP(&table, "table", "t", "", "Write to this database table instead of CSV")
	cmd.Flags().StringArrayVar(&strategies, "strategy", nil, "Per-column strategy as col=name (fitted|perturb|existing|novel|bootstrap)")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Pick per-column strategies interactively")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "Write a run manifest next to the output file")
	cmd.Flags().IntVar(&preview, "preview", 5, "Rows to preview on stdout")
	cmd.MarkFlagRequired("in")

	return cmd
}

// parseStrategyFlags splits repeated col=name flags into a map.
func parseStrategyFlags(flags []string) (map[string]string, error) {
	out := make(map[string]string, len(flags))
	for _, f := range flags {
		col, name, ok := strings.Cut(f, "=")
		if !ok || col == "" || name == "" {
			return nil, fmt.Errorf("invalid --strategy %q: expected col=name", f)
		}
		out[col] = name
	}
	return out, nil
}
