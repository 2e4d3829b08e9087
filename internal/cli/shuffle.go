package cli

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedemo"
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble and print it with the resulting net.

Pass --seed to get the same scramble every time.`,
	Args: cobra.NoArgs,
	RunE: runShuffle,
}

var (
	shuffleCount int
	shuffleSeed  uint64
)

func init() {
	rootCmd.AddCommand(shuffleCmd)
	shuffleCmd.Flags().IntVarP(&shuffleCount, "count", "n", 20, "Number of moves")
	shuffleCmd.Flags().Uint64VarP(&shuffleSeed, "seed", "s", 0, "Random seed (default: time based)")
}

func runShuffle(cmd *cobra.Command, args []string) error {
	if shuffleCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", shuffleCount)
	}

	seed := shuffleSeed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}
	moves := cubedemo.Shuffle(shuffleCount, cubedemo.NewRand(seed))
	log.WithFields(log.Fields{
		"count": shuffleCount,
		"seed":  seed,
	}).Debug("generated scramble")

	c := cubedemo.NewCube()
	c.Apply(moves...)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %d\n", seed)
	fmt.Fprintf(out, "Scramble: %s\n\n", cubedemo.FormatMoves(moves))
	printCube(out, c)
	return nil
}
