package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthgraph/src/domain/entities"

	"github.com/tmc/langchaingo/llms"
)

const systemPrompt = "You are an expert in clinical summarization. Generate a concise summary and a treatment recommendation based on the provided information."

var ErrEmptyCompletion = errors.New("text generation returned no choices")

type LLMGenerator struct {
	model       llms.Model
	temperature float64
}

func NewLLMGenerator(model llms.Model, temperature float64) *LLMGenerator {
	return &LLMGenerator{
		model:       model,
		temperature: temperature,
	}
}

func (g *LLMGenerator) Generate(ctx context.Context, patientID string, treatment entities.Treatment, followUpAction string) (Insight, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(buildUserPrompt(patientID, treatment, followUpAction))},
		},
	}

	resp, err := g.model.GenerateContent(ctx, messages, llms.WithTemperature(g.temperature))
	if err != nil {
		return Insight{}, fmt.Errorf("LLMGenerator.Generate - failed to generate insight for treatment '%s': %w", treatment.ID, err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return Insight{}, fmt.Errorf("LLMGenerator.Generate - treatment '%s': %w", treatment.ID, ErrEmptyCompletion)
	}

	return ParseInsight(resp.Choices[0].Content), nil
}

func buildUserPrompt(patientID string, treatment entities.Treatment, followUpAction string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Patient ID: %s\n", patientID)
	fmt.Fprintf(&b, "Treatment ID: %s\n", treatment.ID)
	fmt.Fprintf(&b, "Treatment type: %s\n", treatment.Type)
	fmt.Fprintf(&b, "Treatment date: %s\n", treatment.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "FollowUpAction: %s\n", followUpAction)
	b.WriteString("Please generate the result in the following format:\n")
	b.WriteString("Summary: <Your summary here>\n")
	b.WriteString("Recommendation: <Your recommendation here>")
	return b.String()
}
