package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/synthlab/tabsynth/internal/cli"
	"github.com/synthlab/tabsynth/internal/dataset"
	"github.com/synthlab/tabsynth/internal/sink"
)

// generateCmd produces a dataset from a YAML schema file.
func generateCmd() *cobra.Command {
	var (
		schemaPath string
		rows       int
		outPath    string
		table      string
		manifest   bool
		watch      bool
		preview    int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset from a schema file",
		Example: `  tabsynth generate --schema people.yaml --rows 100 -o people.csv
  tabsynth generate --schema people.yaml --rows 100 --table people
  tabsynth generate --schema people.yaml --rows 100 -o people.csv --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			if table == "" {
				table = cfg.Table
			}
			if outPath == "" && table == "" {
				outPath = cfg.Output
			}

			run := func() error {
				s, err := client.LoadSchema(schemaPath)
				if err != nil {
					return err
				}
				ds, err := client.Generate(s, rows)
				if err != nil {
					return err
				}
				return deliver(ds, cfg, "generate", outPath, table, manifest, preview)
			}

			if err := run(); err != nil {
				if !watch {
					return err
				}
				fmt.Fprint(os.Stderr, cli.FormatError(err))
			}
			if !watch {
				return nil
			}
			return watchSchema(schemaPath, run)
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "schema.yaml", "Path to YAML schema file")
	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of rows to generate")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output CSV path (default: stdout preview only)")
	cmd.Flags().StringVarP(&table, "table", "t", "", "Write to this database table instead of CSV")
	cmd.Flags().BoolVar(&manifest, "manifest", false, "Write a run manifest next to the output file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate whenever the schema file changes")
	cmd.Flags().IntVar(&preview, "preview", 5, "Rows to preview on stdout")

	return cmd
}

// deliver routes a finished dataset to its destination and prints a
// preview. Used by generate, prompt, and augment alike.
func deliver(ds *dataset.Dataset, cfg *Config, command, outPath, table string, manifest bool, preview int) error {
	if preview > 0 {
		fmt.Print(cli.Preview(ds, preview))
	}

	switch {
	case table != "":
		if err := writeTable(cfg, table, ds); err != nil {
			return err
		}
		fmt.Print(cli.FormatSuccess(fmt.Sprintf("wrote %d rows to table %q", ds.Rows(), table)))

	case outPath != "":
		if err := sink.SaveCSV(outPath, ds); err != nil {
			return err
		}
		fmt.Print(cli.FormatSuccess(fmt.Sprintf("wrote %d rows to %s", ds.Rows(), outPath)))

	default:
		fmt.Print(cli.FormatNote(fmt.Sprintf("%d rows generated; pass -o or -t to save them", ds.Rows())))
	}

	if manifest && outPath != "" {
		m, err := newManifest(command, cfg.Seed, ds)
		if err != nil {
			return err
		}
		path := outPath + ".manifest.yaml"
		if err := m.write(path); err != nil {
			return err
		}
		fmt.Print(cli.FormatNote("manifest written to " + path))
	}
	return nil
}

// writeTable opens the configured database and writes the dataset.
func writeTable(cfg *Config, table string, ds *dataset.Dataset) error {
	dialectName := cfg.Dialect
	if dialectName == "" {
		dialectName = detectDialect(cfg.DatabaseURL)
	}
	d, err := sink.GetDialect(dialectName)
	if err != nil {
		return err
	}

	dsn := cfg.DatabaseURL
	if dsn == "" && d.Name == "sqlite" {
		dsn = "tabsynth.db"
	}

	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	spinner := cli.NewSpinner(fmt.Sprintf("Writing %d rows to %s...", ds.Rows(), table))
	spinner.Start()
	err = sink.WriteTable(context.Background(), db, d, table, ds)
	spinner.Stop(err == nil, "")
	return err
}

// detectDialect guesses the dialect from a database URL. Anything that
// is not a postgres URL is treated as a SQLite file path.
func detectDialect(url string) string {
	if len(url) >= 8 && url[:8] == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

// watchSchema reruns fn whenever the schema file is written, until
// interrupted.
func watchSchema(path string, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory; editors replace files on save, which drops
	// a watch placed on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fmt.Print(cli.FormatNote("watching " + path + " (ctrl-c to stop)"))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	for {
		select {
		case <-interrupt:
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := fn(); err != nil {
				fmt.Fprint(os.Stderr, cli.FormatError(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprint(os.Stderr, cli.FormatError(err))
		}
	}
}
