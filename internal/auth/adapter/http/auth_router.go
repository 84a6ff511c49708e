package http

import (
	"errors"
	"time"

	"summary-generator/internal/auth/usecase"
	apperrors "summary-generator/internal/shared/errors"
	"summary-generator/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

const (
	loginSuccessMessage  = "Login successful"
	logoutSuccessMessage = "Logged out successfully"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name     string
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite string
}

// AuthHTTPHandler handles HTTP requests for authentication
type AuthHTTPHandler struct {
	usecase usecase.AuthUsecaseInterface
	cookie  CookieConfig
	log     logger.Logger
}

// NewAuthHTTPHandler creates a new authentication HTTP handler
func NewAuthHTTPHandler(uc usecase.AuthUsecaseInterface, cookie CookieConfig, log logger.Logger) *AuthHTTPHandler {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &AuthHTTPHandler{
		usecase: uc,
		cookie:  cookie,
		log:     log.WithComponent("auth_http"),
	}
}

// SetupAuthRoutes registers the public login and logout routes
func (h *AuthHTTPHandler) SetupAuthRoutes(router fiber.Router) {
	router.Post("/token", h.Login)
	router.Post("/logout", h.Logout)
}

// Login handles the username/password form and sets the session cookie
func (h *AuthHTTPHandler) Login(c *fiber.Ctx) error {
	var req usecase.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.WriteError(c, apperrors.NewValidationError(apperrors.MessageInvalidBody))
	}

	ctx := c.UserContext()
	response, err := h.usecase.Login(ctx, req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return apperrors.WriteError(c, apperrors.NewInvalidCredentialsError())
		}
		h.log.WithContext(ctx).Errorf("Login failed: %v", err)
		return apperrors.WriteError(c, apperrors.NewInternalError(apperrors.MessageInternal).WithCause(err))
	}

	h.setCookie(c, response.AccessToken)
	h.log.WithContext(ctx).Infof("User %s logged in", response.User.Username)

	return c.Status(fiber.StatusOK).SendString(loginSuccessMessage)
}

// Logout clears the session cookie. It never fails, with or without a cookie.
func (h *AuthHTTPHandler) Logout(c *fiber.Ctx) error {
	_ = h.usecase.Logout(c.UserContext(), c.Cookies(h.cookie.Name))

	h.clearCookie(c)

	return c.Status(fiber.StatusOK).SendString(logoutSuccessMessage)
}

// Helper methods

func (h *AuthHTTPHandler) setCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     h.cookie.Path,
		Domain:   h.cookie.Domain,
		MaxAge:   h.cookie.MaxAge,
		Secure:   h.cookie.Secure,
		HTTPOnly: h.cookie.HTTPOnly,
		SameSite: h.cookie.SameSite,
		Expires:  time.Now().Add(time.Duration(h.cookie.MaxAge) * time.Second),
	})
}

func (h *AuthHTTPHandler) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     h.cookie.Path,
		Domain:   h.cookie.Domain,
		MaxAge:   -1,
		Secure:   h.cookie.Secure,
		HTTPOnly: h.cookie.HTTPOnly,
		SameSite: h.cookie.SameSite,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
