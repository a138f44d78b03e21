// k4 is the command-line front end for the classed periodic
// polyalphabetic wheel engine: it builds per-class wheels from anchor
// constraints, decrypts with explicit undetermined markers, and audits
// candidate plaintexts for feasibility.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "k4",
	Short: "Constraint-based reconstruction engine for a classed periodic cipher",
	Long: `k4 works on a fixed-length ciphertext partitioned into six interleaved
classes, each decrypted by its own wheel (family, period, phase).

Given a schedule and a set of anchor constraints it derives the maximal
set of key residues the wheels can determine, reports infeasible
configurations with the exact conflicting slot, and decrypts the full
text marking every undetermined position explicitly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(wheelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
