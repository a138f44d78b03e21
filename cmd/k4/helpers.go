package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/aviswerdlow/k4-sub008/internal/cipher"
	"github.com/aviswerdlow/k4-sub008/internal/config"
	"github.com/aviswerdlow/k4-sub008/internal/journal"
)

// loadEngineInputs reads the ciphertext and schedule every command
// needs.
func loadEngineInputs(ciphertextPath, schedulePath string, length int) (string, cipher.Schedule, error) {
	ciphertext, err := config.LoadCiphertext(ciphertextPath, length)
	if err != nil {
		return "", cipher.Schedule{}, err
	}
	sched, err := config.LoadSchedule(schedulePath)
	if err != nil {
		return "", cipher.Schedule{}, err
	}
	logger.Debug("inputs loaded",
		zap.Int("ciphertext_length", len(ciphertext)),
		zap.String("schedule", sched.String()))
	return ciphertext, sched, nil
}

// buildFromAnchors loads anchors and folds them into wheels,
// translating a slot conflict into the printed diagnostic the caller
// expects before the non-zero exit.
func buildFromAnchors(ciphertext string, sched cipher.Schedule, anchorsPath string) (*cipher.BuildResult, error) {
	anchors, err := config.LoadAnchors(anchorsPath, len(ciphertext))
	if err != nil {
		return nil, err
	}
	res, err := cipher.BuildWheels(ciphertext, sched, anchors)
	if err != nil {
		if conflict, ok := err.(*cipher.SlotConflict); ok {
			printConflict(conflict)
			return nil, fmt.Errorf("schedule is infeasible for the given anchors")
		}
		return nil, err
	}
	logger.Debug("wheels built",
		zap.Int("anchors", len(anchors)),
		zap.Int("undetermined_slots", res.UndeterminedSlots))
	return res, nil
}

func printConflict(c *cipher.SlotConflict) {
	fmt.Println("INFEASIBLE")
	fmt.Printf("  class:              %d\n", c.Class)
	fmt.Printf("  slot:               %d\n", c.Slot)
	fmt.Printf("  existing residue:   %d (set by position %d)\n", c.Existing, c.FirstPosition)
	fmt.Printf("  conflicting residue: %d (required by position %d)\n", c.Proposed, c.Position)
}

// wheelDump is the YAML shape of a wheel for --wheels-out and the
// wheels command: enough to reproduce decryption deterministically.
type wheelDump struct {
	Class             int         `yaml:"class"`
	Family            string      `yaml:"family"`
	Period            int         `yaml:"period"`
	Phase             int         `yaml:"phase"`
	Slots             map[int]int `yaml:"slots"`
	UndeterminedSlots int         `yaml:"undetermined_slots"`
}

func dumpWheels(ws cipher.Wheels) []wheelDump {
	dumps := make([]wheelDump, 0, cipher.NumClasses)
	for c, w := range ws {
		dumps = append(dumps, wheelDump{
			Class:             c,
			Family:            w.Family().Name(),
			Period:            w.Period(),
			Phase:             w.Phase(),
			Slots:             w.SlotMap(),
			UndeterminedSlots: w.UndeterminedSlots(),
		})
	}
	return dumps
}

func writeWheelsFile(path string, ws cipher.Wheels) error {
	data, err := yaml.Marshal(dumpWheels(ws))
	if err != nil {
		return fmt.Errorf("marshal wheels: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write wheels: %w", err)
	}
	return nil
}

// recordRun appends an entry to the journal when --record is set.
func recordRun(path string, entry journal.Entry) {
	if path == "" {
		return
	}
	j, err := journal.Open(path)
	if err != nil {
		logger.Warn("journal unavailable", zap.Error(err))
		return
	}
	defer j.Close()
	id, err := j.Record(entry)
	if err != nil {
		logger.Warn("journal write failed", zap.Error(err))
		return
	}
	logger.Debug("run recorded", zap.String("run_id", id))
}
