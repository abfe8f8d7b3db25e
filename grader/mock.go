// CLAUDE:SUMMARY Deterministic mock grader derived from a URL hash, for credential-less and test runs.
package grader

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/hazyhaar/shopscan/score"
)

// Mock is a deterministic grader used when no model credential is
// configured and in tests. Scores are derived from a hash of the URL so
// repeated audits of the same page agree, while different pages differ.
type Mock struct {
	// Err, when set, is returned from Grade. For failure-path tests.
	Err error
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) Grade(_ context.Context, in Input) (score.GraderOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	h := fnv.New32a()
	h.Write([]byte(in.URL))
	seed := h.Sum32()

	out := make(score.GraderOutput, len(gradedCategories))
	for i, cat := range gradedCategories {
		// 4..8 keeps mock verdicts in a believable middle band.
		s := 4 + float64((seed>>(uint(i)*3))%5)
		out[cat] = score.GraderCategory{
			Score: s,
			Insights: []string{
				fmt.Sprintf("mock verdict for %s (score %.0f)", cat, s),
			},
		}
	}
	return out, nil
}
