package insights

import (
	"context"
	"strings"

	"healthgraph/src/domain/entities"
)

// Insight is the generated prose stored on a treatment's health snapshot.
type Insight struct {
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// Generator produces an insight for a treatment being created. Errors are not
// retried; they abort the treatment creation.
type Generator interface {
	Generate(ctx context.Context, patientID string, treatment entities.Treatment, followUpAction string) (Insight, error)
}

const (
	summaryMarker        = "summary:"
	recommendationMarker = "recommendation:"
)

// ParseInsight splits a generated text on its "Summary:" and "Recommendation:"
// markers, matched case-insensitively. Without both markers the whole text is
// the summary.
func ParseInsight(text string) Insight {
	summaryIndex := indexFold(text, summaryMarker)
	recommendationIndex := indexFold(text, recommendationMarker)

	if summaryIndex == -1 || recommendationIndex == -1 || recommendationIndex < summaryIndex {
		return Insight{Summary: text}
	}

	return Insight{
		Summary:        strings.TrimSpace(text[summaryIndex+len(summaryMarker) : recommendationIndex]),
		Recommendation: strings.TrimSpace(text[recommendationIndex+len(recommendationMarker):]),
	}
}

// indexFold is strings.Index with ASCII case folding.
func indexFold(s string, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
