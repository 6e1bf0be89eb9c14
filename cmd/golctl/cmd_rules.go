package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	gridcore "gol-editor/pkg/core"
	"gol-editor/pkg/rules"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect, normalise and generate rulestrings",
	}
	cmd.AddCommand(newRulesPresetsCmd(), newRulesParseCmd(), newRulesRandomCmd())
	return cmd
}

func newRulesPresetsCmd() *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			families := rules.Families()
			if family != "" {
				if _, ok := rules.Presets(family); !ok {
					return fmt.Errorf("unknown family %q (have %s)", family, strings.Join(families, ", "))
				}
				families = []string{family}
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, fam := range families {
				for _, name := range rules.Names(fam) {
					s, _ := rules.Preset(fam, name)
					fmt.Fprintf(tw, "%s\t%s\t%s\n", fam, name, s)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only list this family (B/S or LtL)")
	return cmd
}

func newRulesParseCmd() *cobra.Command {
	var (
		family string
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "parse <rulestring|preset|random|default>",
		Short: "Parse a rulestring and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			r, err := rules.Resolve(family, args[0], gridcore.NewRNG(seed))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rule     %s\n", rules.Generate(r))
			fmt.Fprintf(out, "birth    %s\n", formatCounts(r.Birth()))
			fmt.Fprintf(out, "survive  %s\n", formatCounts(r.Survive()))
			fmt.Fprintf(out, "spread   %d\n", r.Spread)
			fmt.Fprintf(out, "center   %t\n", r.IncludeCenter)
			fmt.Fprintf(out, "limit    %d\n", r.NeighborCountLimit())
			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", rules.FamilyBS, "family used by the random and default keywords")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the random keyword, 0 uses the clock")
	return cmd
}

func newRulesRandomCmd() *cobra.Command {
	var (
		family string
		seed   int64
		count  int
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random rulestrings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := gridcore.NewRNG(seed)
			for range count {
				s, err := rules.RandomRulestring(family, rng)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", rules.FamilyBS, "rule family (B/S or LtL)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 uses the clock")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of rulestrings")
	return cmd
}

// formatCounts prints counts compactly, folding runs into lo..hi.
func formatCounts(counts []int) string {
	if len(counts) == 0 {
		return "-"
	}
	var parts []string
	for i := 0; i < len(counts); {
		j := i
		for j+1 < len(counts) && counts[j+1] == counts[j]+1 {
			j++
		}
		if j-i >= 2 {
			parts = append(parts, fmt.Sprintf("%d..%d", counts[i], counts[j]))
		} else {
			for k := i; k <= j; k++ {
				parts = append(parts, fmt.Sprint(counts[k]))
			}
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
