package summarizer

import (
	"fmt"
	"net/http"

	"summary-generator/internal/shared/logger"
	summaryhttp "summary-generator/internal/summarizer/adapter/http"
	"summary-generator/internal/summarizer/adapter/llm"
	"summary-generator/internal/summarizer/config"
	"summary-generator/internal/summarizer/domain/repository"
	"summary-generator/internal/summarizer/usecase"

	"github.com/gofiber/fiber/v2"
)

// SummarizerModule represents the text generation module
type SummarizerModule struct {
	usecase usecase.SummaryUsecaseInterface
	handler *summaryhttp.SummaryHTTPHandler
}

// NewSummarizerModule creates the module with the Groq gateway. It fails when no API key
// is configured.
func NewSummarizerModule(cfg *config.Config, httpClient *http.Client, log logger.Logger) (*SummarizerModule, error) {
	generator, err := llm.NewGroqGenerator(cfg, httpClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}
	return NewSummarizerModuleWithGenerator(generator, cfg, log), nil
}

// NewSummarizerModuleWithGenerator creates the module over any TextGenerator
func NewSummarizerModuleWithGenerator(generator repository.TextGenerator, cfg *config.Config, log logger.Logger) *SummarizerModule {
	uc := usecase.NewSummaryUsecase(generator, cfg, log)
	return &SummarizerModule{
		usecase: uc,
		handler: summaryhttp.NewSummaryHTTPHandler(uc, log),
	}
}

// RegisterRoutes registers the generation routes; protect guards every one of them
func (sm *SummarizerModule) RegisterRoutes(router fiber.Router, protect fiber.Handler) {
	sm.handler.SetupSummaryRoutes(router, protect)
}

// GetUsecase returns the summary usecase for external access
func (sm *SummarizerModule) GetUsecase() usecase.SummaryUsecaseInterface {
	return sm.usecase
}

// Stop performs cleanup when the module is shut down
func (sm *SummarizerModule) Stop() error {
	return nil
}
