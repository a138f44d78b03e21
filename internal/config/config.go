// Package config loads the engine's three file inputs: the ciphertext
// line, the anchor set and the per-class wheel schedule. Everything is
// validated at load time; the cipher engine only ever sees well-formed
// values.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aviswerdlow/k4-sub008/internal/alphabet"
	"github.com/aviswerdlow/k4-sub008/internal/cipher"
)

// DefaultLength is the reference instance's ciphertext length.
const DefaultLength = 97

// LoadCiphertext reads a single line of uppercase A-Z letters. A
// trailing newline is tolerated; anything else in the file is fatal.
// wantLength of 0 accepts any non-empty length.
func LoadCiphertext(path string, wantLength int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read ciphertext: %w", err)
	}
	line := strings.TrimRight(string(data), "\r\n")
	if strings.ContainsAny(line, "\r\n") {
		return "", fmt.Errorf("%w: %s: expected exactly one line", cipher.ErrInvalidInput, path)
	}
	if line == "" {
		return "", fmt.Errorf("%w: %s: empty ciphertext", cipher.ErrInvalidInput, path)
	}
	if _, err := alphabet.Codes(line); err != nil {
		return "", fmt.Errorf("%w: %s: %v", cipher.ErrInvalidInput, path, err)
	}
	if wantLength > 0 && len(line) != wantLength {
		return "", fmt.Errorf("%w: %s: length %d, expected %d",
			cipher.ErrInvalidInput, path, len(line), wantLength)
	}
	return line, nil
}

// LoadCandidate reads a full candidate plaintext with the same rules
// as the ciphertext.
func LoadCandidate(path string, wantLength int) (string, error) {
	return LoadCiphertext(path, wantLength)
}

// anchorFile is the YAML shape of an anchor set. Both forms may be
// mixed in one file.
type anchorFile struct {
	// Words are (start, word) spans expanded into per-position letters.
	Words []anchorWord `yaml:"words"`
	// Positions are explicit position -> letter constraints.
	Positions map[int]string `yaml:"positions"`
}

type anchorWord struct {
	Start int    `yaml:"start"`
	Word  string `yaml:"word"`
}

// LoadAnchors reads an anchor set and expands it into per-position
// letter constraints. Positions must be in [0, textLength); a position
// claimed twice with different letters is rejected here rather than
// surfacing later as a synthetic wheel conflict.
func LoadAnchors(path string, textLength int) (map[int]rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read anchors: %w", err)
	}
	var file anchorFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse anchors %s: %w", path, err)
	}

	anchors := make(map[int]rune)
	claim := func(pos int, r rune) error {
		if pos < 0 || pos >= textLength {
			return fmt.Errorf("%w: %s: anchor position %d outside 0-%d",
				cipher.ErrInvalidInput, path, pos, textLength-1)
		}
		if _, err := alphabet.CodeOf(r); err != nil {
			return fmt.Errorf("%w: %s: anchor at %d: %v", cipher.ErrInvalidInput, path, pos, err)
		}
		if prev, ok := anchors[pos]; ok && prev != r {
			return fmt.Errorf("%w: %s: position %d claimed as both %q and %q",
				cipher.ErrInvalidInput, path, pos, prev, r)
		}
		anchors[pos] = r
		return nil
	}

	for _, aw := range file.Words {
		if aw.Word == "" {
			return nil, fmt.Errorf("%w: %s: empty anchor word at start %d",
				cipher.ErrInvalidInput, path, aw.Start)
		}
		for i, r := range aw.Word {
			if err := claim(aw.Start+i, r); err != nil {
				return nil, err
			}
		}
	}
	for pos, s := range file.Positions {
		if len(s) != 1 {
			return nil, fmt.Errorf("%w: %s: position %d maps to %q, want one letter",
				cipher.ErrInvalidInput, path, pos, s)
		}
		if err := claim(pos, rune(s[0])); err != nil {
			return nil, err
		}
	}
	if len(anchors) == 0 {
		return nil, fmt.Errorf("%w: %s: no anchors defined", cipher.ErrInvalidInput, path)
	}
	return anchors, nil
}

// scheduleFile is the YAML shape of a schedule: one entry per class.
type scheduleFile struct {
	Classes []classEntry `yaml:"classes"`
}

type classEntry struct {
	Class  int    `yaml:"class"`
	Family string `yaml:"family"`
	Period int    `yaml:"period"`
	Phase  int    `yaml:"phase"`
}

// LoadSchedule reads six (family, period, phase) triples, one per
// class 0-5, each class exactly once. Family tags must match the
// closed set; periods must be positive; phases are normalized by the
// wheel itself.
func LoadSchedule(path string) (cipher.Schedule, error) {
	var sched cipher.Schedule

	data, err := os.ReadFile(path)
	if err != nil {
		return sched, fmt.Errorf("read schedule: %w", err)
	}
	var file scheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return sched, fmt.Errorf("parse schedule %s: %w", path, err)
	}

	seen := make(map[int]bool)
	for _, entry := range file.Classes {
		if entry.Class < 0 || entry.Class >= cipher.NumClasses {
			return sched, fmt.Errorf("%w: %s: class %d outside 0-%d",
				cipher.ErrInvalidInput, path, entry.Class, cipher.NumClasses-1)
		}
		if seen[entry.Class] {
			return sched, fmt.Errorf("%w: %s: class %d defined twice",
				cipher.ErrInvalidInput, path, entry.Class)
		}
		seen[entry.Class] = true

		family, err := cipher.ParseFamily(entry.Family)
		if err != nil {
			return sched, fmt.Errorf("%s: class %d: %w", path, entry.Class, err)
		}
		if entry.Period < 1 {
			return sched, fmt.Errorf("%w: %s: class %d period %d must be positive",
				cipher.ErrInvalidInput, path, entry.Class, entry.Period)
		}
		sched[entry.Class] = cipher.WheelConfig{
			Family: family,
			Period: entry.Period,
			Phase:  entry.Phase,
		}
	}

	if len(seen) != cipher.NumClasses {
		missing := make([]int, 0, cipher.NumClasses)
		for c := 0; c < cipher.NumClasses; c++ {
			if !seen[c] {
				missing = append(missing, c)
			}
		}
		sort.Ints(missing)
		return sched, fmt.Errorf("%w: %s: missing classes %v", cipher.ErrInvalidInput, path, missing)
	}
	return sched, nil
}
