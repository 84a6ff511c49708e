package usecase

import (
	"context"
	"strings"

	apperrors "summary-generator/internal/shared/errors"
	"summary-generator/internal/shared/logger"
	"summary-generator/internal/summarizer/config"
	"summary-generator/internal/summarizer/domain/model"
	"summary-generator/internal/summarizer/domain/repository"
)

// ErrGenerationFailed matches every error returned by Summarize and Bulletize
var ErrGenerationFailed = apperrors.ErrGenerationFailed

// bulletMarkers are stripped from the start of each generated line
const bulletMarkers = "-*• \t"

// GenerationError carries the upstream failure unchanged
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrGenerationFailed) hold
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// SummaryUsecaseInterface defines the contract for text summarization
type SummaryUsecaseInterface interface {
	Summarize(ctx context.Context, text string) (string, error)
	Bulletize(ctx context.Context, text string) ([]string, error)
}

// SummaryUsecase builds prompts from configuration and post-processes completions
type SummaryUsecase struct {
	generator repository.TextGenerator
	config    *config.Config
	log       logger.Logger
}

// NewSummaryUsecase creates a new instance of SummaryUsecase.
func NewSummaryUsecase(generator repository.TextGenerator, cfg *config.Config, log logger.Logger) *SummaryUsecase {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &SummaryUsecase{
		generator: generator,
		config:    cfg,
		log:       log.WithComponent("summary_usecase"),
	}
}

// Summarize returns a concise summary of text with surrounding whitespace removed
func (uc *SummaryUsecase) Summarize(ctx context.Context, text string) (string, error) {
	prompt := model.NewPrompt(uc.config.SummarySystemPrompt, uc.config.SummaryUserPrompt, config.TextPlaceholder, text)

	out, err := uc.generator.Generate(ctx, prompt, model.GenerationParams{
		Model:       uc.config.Model,
		MaxTokens:   uc.config.SummaryMaxTokens,
		Temperature: uc.config.Temperature,
	})
	if err != nil {
		uc.log.WithContext(ctx).Errorf("Error in summary generation: %v", err)
		return "", &GenerationError{Err: err}
	}

	return strings.TrimSpace(out), nil
}

// Bulletize returns the key points of text, one per generated line
func (uc *SummaryUsecase) Bulletize(ctx context.Context, text string) ([]string, error) {
	prompt := model.NewPrompt(uc.config.BulletPointsSystemPrompt, uc.config.BulletPointsUserPrompt, config.TextPlaceholder, text)

	out, err := uc.generator.Generate(ctx, prompt, model.GenerationParams{
		Model:       uc.config.Model,
		MaxTokens:   uc.config.BulletPointsMaxTokens,
		Temperature: uc.config.Temperature,
	})
	if err != nil {
		uc.log.WithContext(ctx).Errorf("Error in bullet point generation: %v", err)
		return nil, &GenerationError{Err: err}
	}

	return SplitBulletPoints(out), nil
}

// SplitBulletPoints splits a completion into lines, strips list markers and whitespace
// and drops empty lines. The result is never nil.
func SplitBulletPoints(completion string) []string {
	points := make([]string, 0)
	for _, line := range strings.Split(strings.TrimSpace(completion), "\n") {
		point := strings.TrimSpace(strings.TrimLeft(line, bulletMarkers))
		if point == "" {
			continue
		}
		points = append(points, point)
	}
	return points
}

// Ensure SummaryUsecase implements SummaryUsecaseInterface
var _ SummaryUsecaseInterface = (*SummaryUsecase)(nil)
