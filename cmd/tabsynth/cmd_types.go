package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/synthlab/tabsynth/internal/cli"
)

// typesCmd lists the column types and augmentation strategies.
func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List column types and augmentation strategies",
		Run: func(cmd *cobra.Command, args []string) {
			types := cli.NewTable("type", "args", "example")
			types.AddRow("int", "min-max", "age int 20-50")
			types.AddRow("float", "min-max", "salary float 1000-5000")
			types.AddRow("category", "A/B/C labels", "gender category M/F")
			types.AddRow("string", "none", "name string")
			types.AddRow("date", "start:end", "doj date 2020-01-01:2023-12-31")
			fmt.Println(types.String())

			fmt.Println(cli.Header("name-based columns"))
			fmt.Println("  pid, id            unique integer identifiers from 10000")
			fmt.Println("  *name*             realistic person names")
			fmt.Println("  *city*             realistic city names")
			fmt.Println("  *phone*, *mobile*  realistic phone numbers")
			fmt.Println("  *email*            derived from the name column")
			fmt.Println()

			strategies := cli.NewTable("strategy", "applies to", "behavior")
			strategies.AddRow("fitted", "int, float", "sample Normal(mean, stddev) fitted to the column")
			strategies.AddRow("perturb", "int, float", "existing value plus small noise")
			strategies.AddRow("existing", "string, date", "resample observed values only")
			strategies.AddRow("novel", "string", "resample observed values, 10% new labels")
			strategies.AddRow("bootstrap", "all", "resample existing values uniformly")
			fmt.Println(strategies.String())
		},
	}
}
