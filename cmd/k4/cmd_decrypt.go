package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aviswerdlow/k4-sub008/internal/config"
	"github.com/aviswerdlow/k4-sub008/internal/journal"
)

var (
	decryptCiphertextPath string
	decryptSchedulePath   string
	decryptAnchorsPath    string
	decryptLength         int
	decryptWheelsOut      string
	decryptRecordPath     string
)

// decryptCmd builds wheels from anchors and decrypts the ciphertext
var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Build wheels from anchors and decrypt the full ciphertext",
	Long: `Folds every anchor constraint into the per-class wheels, then applies
the determined residues across the whole text. Positions whose wheel
slot no anchor reached are printed as '?', never guessed.

Example:
  k4 decrypt --ciphertext k4.txt --schedule schedule.yaml --anchors anchors.yaml`,
	RunE: runDecrypt,
}

func init() {
	decryptCmd.Flags().StringVar(&decryptCiphertextPath, "ciphertext", "", "path to the ciphertext file (required)")
	decryptCmd.Flags().StringVar(&decryptSchedulePath, "schedule", "", "path to the schedule YAML (required)")
	decryptCmd.Flags().StringVar(&decryptAnchorsPath, "anchors", "", "path to the anchors YAML (required)")
	decryptCmd.Flags().IntVar(&decryptLength, "length", config.DefaultLength, "expected ciphertext length (0 accepts any)")
	decryptCmd.Flags().StringVar(&decryptWheelsOut, "wheels-out", "", "write the derived wheels to this YAML file")
	decryptCmd.Flags().StringVar(&decryptRecordPath, "record", "", "append this run to a SQLite journal at the given path")
	_ = decryptCmd.MarkFlagRequired("ciphertext")
	_ = decryptCmd.MarkFlagRequired("schedule")
	_ = decryptCmd.MarkFlagRequired("anchors")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	ciphertext, sched, err := loadEngineInputs(decryptCiphertextPath, decryptSchedulePath, decryptLength)
	if err != nil {
		return err
	}

	res, err := buildFromAnchors(ciphertext, sched, decryptAnchorsPath)
	if err != nil {
		recordRun(decryptRecordPath, journal.Entry{
			Kind: "decrypt", Schedule: sched.String(), Feasible: false, Conflict: err.Error(),
		})
		return err
	}

	dec, err := res.Wheels.Decrypt(ciphertext)
	if err != nil {
		return err
	}

	fmt.Println(dec.Text)
	fmt.Printf("undetermined: %d\n", dec.UndeterminedCount())
	if len(dec.Undetermined) > 0 {
		fmt.Printf("positions:    %v\n", dec.Undetermined)
	}
	fmt.Println("fill by class:")
	for c, w := range res.Wheels {
		fmt.Printf("  class %d: %s L=%d phase=%d  slots %d/%d\n",
			c, w.Family().Name(), w.Period(), w.Phase(), w.FilledSlots(), w.Period())
	}

	if decryptWheelsOut != "" {
		if err := writeWheelsFile(decryptWheelsOut, res.Wheels); err != nil {
			return err
		}
		logger.Info("wheels written", zap.String("path", decryptWheelsOut))
	}

	recordRun(decryptRecordPath, journal.Entry{
		Kind:         "decrypt",
		Schedule:     sched.String(),
		Feasible:     true,
		Undetermined: dec.UndeterminedCount(),
	})
	return nil
}
