package insights

import (
	"context"
	"fmt"

	"healthgraph/src/domain/entities"
)

// OfflineGenerator derives a deterministic insight from the inputs. It stands
// in for the model when no API key is configured and when seeding data.
type OfflineGenerator struct{}

func NewOfflineGenerator() *OfflineGenerator {
	return &OfflineGenerator{}
}

func (g *OfflineGenerator) Generate(_ context.Context, patientID string, treatment entities.Treatment, followUpAction string) (Insight, error) {
	return Insight{
		Summary:        fmt.Sprintf("Patient %s received %s treatment.", patientID, treatment.Type),
		Recommendation: fmt.Sprintf("Follow up: %s.", followUpAction),
	}, nil
}
