package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aviswerdlow/k4-sub008/internal/config"
)

var (
	encryptCiphertextPath string
	encryptSchedulePath   string
	encryptAnchorsPath    string
	encryptPlaintextPath  string
	encryptLength         int
)

// encryptCmd runs the wheels in the encryption direction
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a plaintext with anchor-derived wheels (round-trip check)",
	Long: `Builds wheels from the ciphertext, schedule and anchors exactly as
decrypt does, then applies them in the encryption direction to the
given plaintext. Undetermined slots render as '?' here too. This
exists for round-trip verification: encrypting a decryption must
reproduce the ciphertext at every determined position.`,
	RunE: runEncrypt,
}

func init() {
	encryptCmd.Flags().StringVar(&encryptCiphertextPath, "ciphertext", "", "path to the ciphertext file (required)")
	encryptCmd.Flags().StringVar(&encryptSchedulePath, "schedule", "", "path to the schedule YAML (required)")
	encryptCmd.Flags().StringVar(&encryptAnchorsPath, "anchors", "", "path to the anchors YAML (required)")
	encryptCmd.Flags().StringVar(&encryptPlaintextPath, "plaintext", "", "path to the plaintext file (required)")
	encryptCmd.Flags().IntVar(&encryptLength, "length", config.DefaultLength, "expected text length (0 accepts any)")
	_ = encryptCmd.MarkFlagRequired("ciphertext")
	_ = encryptCmd.MarkFlagRequired("schedule")
	_ = encryptCmd.MarkFlagRequired("anchors")
	_ = encryptCmd.MarkFlagRequired("plaintext")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	ciphertext, sched, err := loadEngineInputs(encryptCiphertextPath, encryptSchedulePath, encryptLength)
	if err != nil {
		return err
	}
	plaintext, err := config.LoadCandidate(encryptPlaintextPath, len(ciphertext))
	if err != nil {
		return err
	}

	res, err := buildFromAnchors(ciphertext, sched, encryptAnchorsPath)
	if err != nil {
		return err
	}

	enc, err := res.Wheels.Encrypt(plaintext)
	if err != nil {
		return err
	}
	fmt.Println(enc.Text)
	fmt.Printf("undetermined: %d\n", enc.UndeterminedCount())
	return nil
}
