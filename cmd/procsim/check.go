package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sarchlab/procsim/network"
	"github.com/sarchlab/procsim/numeric/spatial"
	"github.com/sarchlab/procsim/unit"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [scenario]",
	Short: "Check the numerical stability of a scenario.",
	Long: "`check [scenario]` prints the diffusion and Courant numbers of " +
		"every distributed unit. With --refine k, it also prints the grid " +
		"and the sub-steps that keep the unit stable on a k times finer grid.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		refine, _ := cmd.Flags().GetInt("refine")
		if refine < 1 {
			return fmt.Errorf("refinement factor must be at least 1, got %d",
				refine)
		}

		n, err := buildScenario(scenarioName(args))
		if err != nil {
			return err
		}

		ok, err := writeStability(cmd.OutOrStdout(), n, refine)
		if err != nil {
			return err
		}

		if !ok {
			return spatial.ErrUnstable
		}

		return nil
	},
}

func init() {
	checkCmd.Flags().Int("refine", 1, "grid refinement factor to evaluate")
	rootCmd.AddCommand(checkCmd)
}

// writeStability prints one row per distributed unit and tells whether every
// unit is stable at the current time step.
func writeStability(
	out io.Writer,
	n *network.Network,
	refine int,
) (bool, error) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	stable := true

	fmt.Fprintln(w,
		"UNIT\tINTERVALS\tSUBSTEPS\tDT\tDIFFUSION\tCOURANT\tRESIDENCE\tSTATUS")

	for _, u := range n.Units() {
		d, ok := u.(unit.Distributed)
		if !ok {
			continue
		}

		intervals := d.Grid().Intervals()
		subSteps := d.SubSteps()
		dt := float64(n.Clock().TimeStep()) / float64(subSteps)
		s := d.Stability(dt)

		status := "ok"
		if err := s.Check(); err != nil {
			stable = false
			status = err.Error()
		}

		fmt.Fprintf(w, "%s\t%d\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%s\n",
			d.Name(), intervals, subSteps, dt,
			s.Diffusion, s.Courant, d.ResidenceTime(), status)

		if refine == 1 {
			continue
		}

		// dz shrinks by k and dt by k², so the diffusion number is unchanged
		// and the Courant number drops by k.
		ri, rs := spatial.Rescale(intervals, subSteps, refine)
		refined := spatial.Stability{
			Diffusion: s.Diffusion,
			Courant:   s.Courant / float64(refine),
		}

		status = "ok"
		if err := refined.Check(); err != nil {
			status = err.Error()
		}

		fmt.Fprintf(w, "%s x%d\t%d\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%s\n",
			d.Name(), refine, ri, rs, dt/float64(refine*refine),
			refined.Diffusion, refined.Courant, d.ResidenceTime(), status)
	}

	if err := w.Flush(); err != nil {
		return false, err
	}

	return stable, nil
}

