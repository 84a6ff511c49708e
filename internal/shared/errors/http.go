package errors

import (
	"errors"
	"net/http"

	"summary-generator/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// WriteError renders err as {"error": message}. Authentication errors also carry
// the WWW-Authenticate challenge.
func WriteError(c *fiber.Ctx, err error) error {
	status := HTTPStatus(err)
	message := MessageInternal

	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if IsAuthentication(err) {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// FiberErrorHandler is the application-wide fiber error handler
func FiberErrorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
			})
		}

		requestLog := log.WithContext(c.UserContext()).WithFields(map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
		})
		switch {
		case IsGeneration(err):
			requestLog.Warnf("Text generation failed: %v", err)
		case HTTPStatus(err) < http.StatusInternalServerError:
			requestLog.Debugf("Request rejected: %v", err)
		default:
			requestLog.Errorf("HTTP Error: %v", err)
		}
		return WriteError(c, err)
	}
}
