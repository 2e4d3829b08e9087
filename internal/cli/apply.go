package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedemo"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply moves to a solved cube and print its net",
	Long: `Apply a move sequence to a solved cube and print the unfolded net.

Parsing stops at the first invalid token and nothing is applied.

Usage:
  cubedemo apply R U R' U'
  cubedemo apply "F B2 L' D"
  cubedemo apply --plain R`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := parseArgs(args)
	if err != nil {
		return err
	}

	c := cubedemo.NewCube()
	c.Apply(moves...)
	log.WithFields(log.Fields{
		"moves":    len(moves),
		"notation": cubedemo.FormatMoves(moves),
	}).Debug("applied moves")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %s\n\n", cubedemo.FormatMoves(moves))
	printCube(out, c)
	return nil
}
