package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "procsim",
	Short: "procsim simulates chemical process units in real time.",
	Long: `procsim simulates networks of chemical process units, such as ` +
		`tanks, stirred reactors, plug-flow reactors and heat exchangers. ` +
		`Scenarios are either built in or read from YAML files.`,
	SilenceUsage: true,
}

// execute runs the root command. Exit handlers, such as the flushing of the
// recorded data, run before the process exits.
func execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
