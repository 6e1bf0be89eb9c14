package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	gridcore "gol-editor/pkg/core"
	"gol-editor/pkg/pattern"
)

func newPatternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Work with 'O'-row pattern files",
	}
	cmd.AddCommand(newPatternInfoCmd(), newPatternTrimCmd(), newPatternEncodeCmd())
	return cmd
}

func newPatternInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file|->",
		Short: "Print the size and live cell count of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			w, h := pattern.Dims(text)
			size := gridcore.Size{W: w, H: h}
			live := pattern.Living(text, size, 0)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size   %dx%d\n", w, h)
			fmt.Fprintf(out, "live   %d\n", len(live))
			if len(live) > 0 {
				tl, br := pattern.BoundingBox(live, size)
				fmt.Fprintf(out, "bounds (%d,%d)-(%d,%d)\n", tl.X, tl.Y, br.X, br.Y)
			}
			return nil
		},
	}
}

func newPatternTrimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim <file|->",
		Short: "Drop the dead rows and columns around a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pattern.Trim(text))
			return nil
		},
	}
}

func newPatternEncodeCmd() *cobra.Command {
	var w, h int
	cmd := &cobra.Command{
		Use:   "encode <index>...",
		Short: "Encode flat cell indices of a w*h board as pattern text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := gridcore.Size{W: w, H: h}
			if w <= 0 || h <= 0 {
				return fmt.Errorf("--width and --height must be positive")
			}
			indices := make([]int, 0, len(args))
			for _, arg := range args {
				idx, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("index %q: %w", arg, err)
				}
				if idx < 0 || idx >= size.Area() {
					return fmt.Errorf("index %d outside a %dx%d board", idx, w, h)
				}
				indices = append(indices, idx)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pattern.Encode(indices, size))
			return nil
		},
	}
	cmd.Flags().IntVar(&w, "width", 0, "board width")
	cmd.Flags().IntVar(&h, "height", 0, "board height")
	return cmd
}
