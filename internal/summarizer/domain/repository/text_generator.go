package repository

import (
	"context"

	"summary-generator/internal/summarizer/domain/model"
)

// TextGenerator is the external text-generation service. Implementations return the raw
// completion text and must not retry.
type TextGenerator interface {
	Generate(ctx context.Context, prompt model.Prompt, params model.GenerationParams) (string, error)
}
