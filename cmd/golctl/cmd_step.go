package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gol-editor/pkg/engine"
	"gol-editor/pkg/pattern"
	"gol-editor/pkg/rules"
)

func newStepCmd() *cobra.Command {
	var (
		gens int
		rule string
		edge string
		pad  int
	)
	cmd := &cobra.Command{
		Use:   "step <pattern-file|->",
		Short: "Advance a pattern and print the result",
		Long: `Step places the pattern on a board with --pad dead cells on every side,
advances it --gens generations and prints the living cells as pattern text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			r, err := rules.Parse(rule)
			if err != nil {
				return err
			}
			policy, err := engine.ParseEdgePolicy(edge)
			if err != nil {
				return err
			}
			if gens < 0 || pad < 0 {
				return fmt.Errorf("--gens and --pad must be >= 0")
			}
			w, h := pattern.Dims(text)
			if w == 0 {
				return fmt.Errorf("empty pattern")
			}
			eng := engine.New(w+2*pad, h+2*pad, r, engine.WithEdgePolicy(policy))
			eng.LoadPatternAt(text, pad, pad)
			eng.SkipNGens(gens)
			eng.Board().Refresh()

			living := eng.Living()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "!%s\n", eng)
			if len(living) > 0 {
				tl, _ := pattern.BoundingBox(living, eng.Size())
				fmt.Fprintf(out, "!origin %d,%d\n", tl.X-pad, tl.Y-pad)
			}
			fmt.Fprintln(out, pattern.Encode(living, eng.Size()))
			return nil
		},
	}
	cmd.Flags().IntVar(&gens, "gens", 1, "generations to advance")
	cmd.Flags().StringVar(&rule, "rule", "B3/S23", "rulestring")
	cmd.Flags().StringVar(&edge, "edge", "dead", "edge policy: flat, dead, clamp or wrap")
	cmd.Flags().IntVar(&pad, "pad", 8, "dead cells added around the pattern")
	return cmd
}
