package grader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hazyhaar/shopscan/score"
)

// parseOutput decodes the model's JSON verdict. Code fences are tolerated
// despite the prompt forbidding them; models add them anyway. Unknown
// categories are dropped and scores are clamped to [0, 100] so one
// hallucinated value cannot distort the composite.
func parseOutput(text string) (score.GraderOutput, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw map[string]score.GraderCategory
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %v", ErrGradingFailed, err)
	}

	out := make(score.GraderOutput, len(gradedCategories))
	for _, cat := range gradedCategories {
		c, ok := raw[cat]
		if !ok {
			continue
		}
		if c.Score < 0 {
			c.Score = 0
		}
		if c.Score > 100 {
			c.Score = 100
		}
		out[cat] = c
	}
	return out, nil
}
