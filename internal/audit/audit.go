// Package audit fans a feasibility check out over several candidate
// plaintexts. Each candidate gets its own fresh wheel set, so the
// checks share nothing and run in parallel without locking; the engine
// itself stays single-threaded and pure.
package audit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/aviswerdlow/k4-sub008/internal/cipher"
)

// Candidate is one full plaintext to audit, with a caller-facing name
// (typically the source file).
type Candidate struct {
	Name      string
	Plaintext string
}

// Result pairs a candidate with its verdict. Results come back in the
// same order as the input candidates.
type Result struct {
	Name    string
	Verdict *cipher.Verdict
}

// Candidates audits every candidate against the ciphertext and
// schedule concurrently. An infeasible candidate is a normal result;
// only malformed input aborts the whole batch. limit caps concurrent
// checks (<= 0 means unbounded).
func Candidates(ctx context.Context, ciphertext string, sched cipher.Schedule, candidates []Candidate, limit int) ([]Result, error) {
	results := make([]Result, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			verdict, err := cipher.TestFeasibility(ciphertext, cand.Plaintext, sched)
			if err != nil {
				return fmt.Errorf("candidate %s: %w", cand.Name, err)
			}
			results[i] = Result{Name: cand.Name, Verdict: verdict}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
