package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedemo"
)

var invertCmd = &cobra.Command{
	Use:   "invert <moves...>",
	Short: "Print the sequence that undoes a move sequence",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInvert,
}

var invertSimplify bool

func init() {
	rootCmd.AddCommand(invertCmd)
	invertCmd.Flags().BoolVar(&invertSimplify, "simplify", false, "Merge adjacent turns of the same face")
}

func runInvert(cmd *cobra.Command, args []string) error {
	moves, err := parseArgs(args)
	if err != nil {
		return err
	}

	inv := cubedemo.InvertMoves(moves)
	if invertSimplify {
		inv = cubedemo.SimplifyMoves(inv)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cubedemo.FormatMoves(inv))
	return nil
}
