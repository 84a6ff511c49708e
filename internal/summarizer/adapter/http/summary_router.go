package http

import (
	apperrors "summary-generator/internal/shared/errors"
	"summary-generator/internal/shared/logger"
	"summary-generator/internal/shared/utils"
	"summary-generator/internal/summarizer/usecase"

	"github.com/gofiber/fiber/v2"
)

// TextInput is the request body of both generation endpoints
type TextInput struct {
	Text string `json:"text"`
}

// SummaryResponse is returned by POST /generate-summary/
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// BulletPointsResponse is returned by POST /generate-bullet-points/
type BulletPointsResponse struct {
	BulletPoints []string `json:"bullet_points"`
}

// SummaryHTTPHandler handles the text generation endpoints
type SummaryHTTPHandler struct {
	usecase usecase.SummaryUsecaseInterface
	log     logger.Logger
}

// NewSummaryHTTPHandler creates a new summary HTTP handler
func NewSummaryHTTPHandler(uc usecase.SummaryUsecaseInterface, log logger.Logger) *SummaryHTTPHandler {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &SummaryHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("summary_http"),
	}
}

// SetupSummaryRoutes registers the generation routes behind protect
func (h *SummaryHTTPHandler) SetupSummaryRoutes(router fiber.Router, protect fiber.Handler) {
	router.Post("/generate-summary/", protect, h.GenerateSummary)
	router.Post("/generate-bullet-points/", protect, h.GenerateBulletPoints)
}

// GenerateSummary handles POST /generate-summary/. Errors are rendered by the app's
// error handler.
func (h *SummaryHTTPHandler) GenerateSummary(c *fiber.Ctx) error {
	input, err := parseTextInput(c)
	if err != nil {
		return err
	}

	ctx := utils.WithOperation(c.UserContext(), "generate_summary")
	h.log.WithContext(ctx).Debugf("Summarizing %d characters", len(input.Text))

	summary, err := h.usecase.Summarize(ctx, input.Text)
	if err != nil {
		return apperrors.NewGenerationError("summary", err)
	}

	return c.JSON(SummaryResponse{Summary: summary})
}

// GenerateBulletPoints handles POST /generate-bullet-points/
func (h *SummaryHTTPHandler) GenerateBulletPoints(c *fiber.Ctx) error {
	input, err := parseTextInput(c)
	if err != nil {
		return err
	}

	ctx := utils.WithOperation(c.UserContext(), "generate_bullet_points")
	h.log.WithContext(ctx).Debugf("Extracting bullet points from %d characters", len(input.Text))

	points, err := h.usecase.Bulletize(ctx, input.Text)
	if err != nil {
		return apperrors.NewGenerationError("bullet points", err)
	}

	return c.JSON(BulletPointsResponse{BulletPoints: points})
}

func parseTextInput(c *fiber.Ctx) (*TextInput, error) {
	var input TextInput
	if err := c.BodyParser(&input); err != nil {
		return nil, apperrors.NewValidationError(apperrors.MessageInvalidBody).WithCause(err)
	}
	return &input, nil
}
