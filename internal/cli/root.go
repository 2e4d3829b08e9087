// Package cli implements the command-line interface for cubedemo.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedemo/internal/render"
)

const version = "0.1.0"

var (
	// Global flags
	verbose bool
	plain   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubedemo",
	Short: "3x3x3 cube model demo",
	Long: `cubedemo - apply moves to a virtual 3x3x3 cube and look at the result.

Moves use standard notation: a face letter (U, D, F, B, L, R), an optional 2
for a half turn and an optional ' for counter-clockwise, e.g. R U2 F' B2'.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders a command error for the terminal.
func formatError(err error) string {
	return render.ErrorStyle.Render("Error: " + err.Error())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Print nets as letters instead of colored blocks")
}

// setupLogging sends logs to the command's stderr at info, or debug with --verbose.
func setupLogging(cmd *cobra.Command) {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
