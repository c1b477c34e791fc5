package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// promptCmd generates a dataset from a one-line textual description.
func promptCmd() *cobra.Command {
	var (
		outPath  string
		table    string
		manifest bool
		preview  int
	)

	cmd := &cobra.Command{
		Use:   "prompt <description>",
		Short: "Generate a dataset from a one-line prompt",
		Long: `Generate a dataset from a one-line textual description.

The prompt names a row count, then "columns:", then comma-separated
column definitions of the form "<name> <type> [args]":

  int, float    take a min-max range:   age int 20-50
  category      takes slash labels:     gender category M/F
  date          takes start:end:        doj date 2020-01-01:2023-12-31
  string        takes no args:          name string

A column named pid or id becomes a unique identifier column; a column
whose name contains "email" is derived from the name column.`,
		Example: `  tabsynth prompt "5 rows, columns: age int 20-50, gender category M/F"
  tabsynth prompt "100 rows, columns: pid int 0-0, name string, email string" -o people.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			ds, err := client.GenerateFromPrompt(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return deliver(ds, cfg, "prompt", outPath, table, manifest, preview)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output CSV path")
	cmd.Flags().StringVarP(&table, "table", "t", "", "Write to this database table instead of CSV")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "Write a run manifest next to the output file")
	cmd.Flags().IntVar(&preview, "preview", 5, "Rows to preview on stdout")

	return cmd
}
