package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sarchlab/procsim/config"
	"github.com/sarchlab/procsim/network"
	"github.com/sarchlab/procsim/scenario"
	"github.com/spf13/cobra"
)

var paramsCmd = &cobra.Command{
	Use:   "params [scenario]",
	Short: "List the parameters of the units of a scenario.",
	Long: "`params [scenario]` prints every declared parameter with its " +
		"range and the value the scenario gives it.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := buildScenario(scenarioName(args))
		if err != nil {
			return err
		}

		if err := n.Initialize(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}

		return writeParams(cmd.OutOrStdout(), n)
	},
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}

// scenarioName returns the scenario named on the command line, or the
// configured one.
func scenarioName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Default().Scenario
	}

	return cfg.Scenario
}

func buildScenario(name string) (*network.Network, error) {
	doc, err := scenario.Load(name)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

func writeParams(out io.Writer, n *network.Network) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "UNIT\tPARAM\tVALUE\tUNITS\tMIN\tMAX\tINITIAL")

	for _, u := range n.Units() {
		for _, spec := range u.Params().Specs() {
			v, _ := u.Params().Value(spec.Name)

			fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%g\t%g\t%g\n",
				u.Name(), spec.Name, v, spec.Units,
				spec.Min, spec.Max, spec.Initial)
		}
	}

	return w.Flush()
}
