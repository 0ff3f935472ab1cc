package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/pdf-summarizer/internal/models"
)

const (
	titlePrompt    = "Generate a concise technical title:\n"
	execPrompt     = "Write an executive summary (3-4 sentences):\n"
	pointsPrompt   = "Extract the most important points:\n"
	conceptsPrompt = "List important technical concepts:\n"
	takeawayPrompt = "Write a strong final takeaway sentence:\n"
)

// Structured is the raw generator output for one document. KeyPoints and
// Concepts are freeform and still need bullet formatting.
type Structured struct {
	Title            string
	ExecutiveSummary string
	KeyPoints        string
	Concepts         string
	FinalTakeaway    string
}

type StructuredGenerator struct {
	model GenerationModel
}

func NewStructuredGenerator(model GenerationModel) *StructuredGenerator {
	return &StructuredGenerator{model: model}
}

// Generate runs one prompt and trims the output.
func (g *StructuredGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	out, err := g.model.Generate(ctx, prompt, maxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Structure asks the model for each section of the result, one call at a
// time, using summary as the shared context.
func (g *StructuredGenerator) Structure(ctx context.Context, summary string, profile models.LengthProfile) (*Structured, error) {
	steps := []struct {
		field     string
		prompt    string
		maxTokens int
	}{
		{"title", titlePrompt, models.TitleTokens},
		{"executive_summary", execPrompt, profile.Exec},
		{"key_points", pointsPrompt, profile.Points},
		{"important_concepts", conceptsPrompt, profile.Concepts},
		{"final_takeaway", takeawayPrompt, profile.Takeaway},
	}

	outputs := make([]string, len(steps))
	for i, step := range steps {
		out, err := g.Generate(ctx, step.prompt+summary, step.maxTokens)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", step.field, err)
		}
		outputs[i] = out
	}

	return &Structured{
		Title:            outputs[0],
		ExecutiveSummary: outputs[1],
		KeyPoints:        outputs[2],
		Concepts:         outputs[3],
		FinalTakeaway:    outputs[4],
	}, nil
}
