package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sarchlab/procsim/scenario"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in scenarios and the unit kinds.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func writeList(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "SCENARIO\tDESCRIPTION")

	for _, name := range scenario.Builtins() {
		doc, err := scenario.Builtin(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\n", name, doc.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "KIND\tDESCRIPTION")

	for _, k := range scenario.Kinds() {
		fmt.Fprintf(w, "%s\t%s\n", k[0], k[1])
	}

	return w.Flush()
}
