package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aviswerdlow/k4-sub008/internal/audit"
	"github.com/aviswerdlow/k4-sub008/internal/cipher"
	"github.com/aviswerdlow/k4-sub008/internal/config"
	"github.com/aviswerdlow/k4-sub008/internal/journal"
)

var (
	verifyCiphertextPath string
	verifySchedulePath   string
	verifyLength         int
	verifyJobs           int
	verifyRecordPath     string
)

// verifyCmd audits full candidate plaintexts for feasibility
var verifyCmd = &cobra.Command{
	Use:   "verify CANDIDATE...",
	Short: "Audit candidate plaintexts for feasibility under a schedule",
	Long: `Re-derives every wheel residue from every position of each candidate
plaintext and reports whether the schedule can realize it with zero
slot conflicts. On failure the exact conflict record is printed:
position, class, slot, both residues and both contributing positions.

Multiple candidates are checked concurrently; each gets its own fresh
wheel set.

Example:
  k4 verify --ciphertext k4.txt --schedule schedule.yaml claim.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyCiphertextPath, "ciphertext", "", "path to the ciphertext file (required)")
	verifyCmd.Flags().StringVar(&verifySchedulePath, "schedule", "", "path to the schedule YAML (required)")
	verifyCmd.Flags().IntVar(&verifyLength, "length", config.DefaultLength, "expected text length (0 accepts any)")
	verifyCmd.Flags().IntVar(&verifyJobs, "jobs", 4, "max candidates checked concurrently")
	verifyCmd.Flags().StringVar(&verifyRecordPath, "record", "", "append verdicts to a SQLite journal at the given path")
	_ = verifyCmd.MarkFlagRequired("ciphertext")
	_ = verifyCmd.MarkFlagRequired("schedule")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ciphertext, sched, err := loadEngineInputs(verifyCiphertextPath, verifySchedulePath, verifyLength)
	if err != nil {
		return err
	}

	candidates := make([]audit.Candidate, 0, len(args))
	for _, path := range args {
		plaintext, err := config.LoadCandidate(path, len(ciphertext))
		if err != nil {
			return err
		}
		candidates = append(candidates, audit.Candidate{Name: path, Plaintext: plaintext})
	}

	results, err := audit.Candidates(cmd.Context(), ciphertext, sched, candidates, verifyJobs)
	if err != nil {
		return err
	}

	infeasible := 0
	for _, res := range results {
		v := res.Verdict
		if v.Feasible {
			fmt.Printf("%s: FEASIBLE (slots filled: %d, key sizes: %v)\n",
				res.Name, v.SlotsFilled, v.KeySizes)
		} else {
			infeasible++
			fmt.Printf("%s:\n", res.Name)
			printConflict(v.Conflict)
		}
		recordRun(verifyRecordPath, journal.Entry{
			Kind:     "verify",
			Schedule: sched.String(),
			Feasible: v.Feasible,
			Conflict: conflictText(v),
		})
	}

	logger.Debug("verification finished",
		zap.Int("candidates", len(results)),
		zap.Int("infeasible", infeasible))
	if infeasible > 0 {
		return fmt.Errorf("%d of %d candidates infeasible", infeasible, len(results))
	}
	return nil
}

func conflictText(v *cipher.Verdict) string {
	if v.Conflict == nil {
		return ""
	}
	return v.Conflict.Error()
}
