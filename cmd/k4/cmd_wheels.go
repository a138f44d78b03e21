package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aviswerdlow/k4-sub008/internal/config"
)

var (
	wheelsCiphertextPath string
	wheelsSchedulePath   string
	wheelsAnchorsPath    string
	wheelsLength         int
)

// wheelsCmd dumps the anchor-derived wheel state
var wheelsCmd = &cobra.Command{
	Use:   "wheels",
	Short: "Show the wheels the anchors force, as YAML",
	Long: `Builds wheels from the anchors and prints each class's family, period,
phase and sparse slot map. The dump is sufficient to reproduce the
decryption deterministically.`,
	RunE: runWheels,
}

func init() {
	wheelsCmd.Flags().StringVar(&wheelsCiphertextPath, "ciphertext", "", "path to the ciphertext file (required)")
	wheelsCmd.Flags().StringVar(&wheelsSchedulePath, "schedule", "", "path to the schedule YAML (required)")
	wheelsCmd.Flags().StringVar(&wheelsAnchorsPath, "anchors", "", "path to the anchors YAML (required)")
	wheelsCmd.Flags().IntVar(&wheelsLength, "length", config.DefaultLength, "expected ciphertext length (0 accepts any)")
	_ = wheelsCmd.MarkFlagRequired("ciphertext")
	_ = wheelsCmd.MarkFlagRequired("schedule")
	_ = wheelsCmd.MarkFlagRequired("anchors")
}

func runWheels(cmd *cobra.Command, args []string) error {
	ciphertext, sched, err := loadEngineInputs(wheelsCiphertextPath, wheelsSchedulePath, wheelsLength)
	if err != nil {
		return err
	}
	res, err := buildFromAnchors(ciphertext, sched, wheelsAnchorsPath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(dumpWheels(res.Wheels))
	if err != nil {
		return fmt.Errorf("marshal wheels: %w", err)
	}
	fmt.Print(string(data))
	fmt.Printf("# undetermined slots: %d\n", res.UndeterminedSlots)
	return nil
}
