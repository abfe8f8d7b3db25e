// CLAUDE:SUMMARY AI grading boundary: Grader interface, input contract, env-based resolution with deterministic mock fallback.
// Package grader obtains the subjective category verdicts for a storefront
// page from an AI model. It owns only the call boundary: the output
// contract is score.GraderOutput and the scoring engine never knows which
// implementation produced it.
package grader

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/hazyhaar/shopscan/score"
)

// ErrGradingFailed wraps upstream model failures. Surfaced as HTTP 500 at
// the route boundary; the pipeline treats it as "grading unavailable" and
// scores with defaults.
var ErrGradingFailed = errors.New("grader: grading failed")

// Input is everything the grader sees about one storefront page.
type Input struct {
	URL      string
	Platform string // detected storefront platform, "" for generic
	HTML     []byte
	// Screenshots are PNG captures, desktop first. Implementations may
	// attach or ignore them.
	Screenshots [][]byte
}

// Grader produces category verdicts for one page.
type Grader interface {
	Grade(ctx context.Context, in Input) (score.GraderOutput, error)
	Name() string
}

// gradedCategories are the seven categories the model is asked to judge,
// each on a 0-10 scale.
var gradedCategories = []string{
	score.CategoryBI,
	score.CategoryUSPPromo,
	score.CategoryTrust,
	score.CategoryPurchaseFlow,
	score.CategoryFirstView,
	score.CategoryNavigation,
	score.CategoryVisuals,
}

// Resolve picks the Anthropic grader when ANTHROPIC_API_KEY is configured
// and the deterministic mock otherwise.
func Resolve(logger *slog.Logger) Grader {
	if logger == nil {
		logger = slog.Default()
	}
	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		g, err := NewAnthropic()
		if err == nil {
			logger.Info("grader: using anthropic")
			return g
		}
		logger.Warn("grader: anthropic init failed, falling back to mock", "error", err)
	} else {
		logger.Info("grader: no API key configured, using deterministic mock")
	}
	return &Mock{}
}
