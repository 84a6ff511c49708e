package http

import (
	"summary-generator/internal/auth/usecase"
	apperrors "summary-generator/internal/shared/errors"
	"summary-generator/internal/shared/logger"
	"summary-generator/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// requestIDLocalKey is the fiber Locals key requestid stores the ID under
const requestIDLocalKey = "requestid"

// AuthMiddleware provides authentication middleware for Fiber
type AuthMiddleware struct {
	usecase    usecase.AuthUsecaseInterface
	cookieName string
	log        logger.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(uc usecase.AuthUsecaseInterface, cookieName string, log logger.Logger) *AuthMiddleware {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &AuthMiddleware{
		usecase:    uc,
		cookieName: cookieName,
		log:        log.WithComponent("auth_middleware"),
	}
}

// CORS allows the configured browser origins to send the session cookie
func (m *AuthMiddleware) CORS(allowOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Requested-With,X-Request-ID",
		// fiber refuses credentials with a wildcard origin
		AllowCredentials: allowOrigins != "*",
		MaxAge:           86400, // 24 hours
	})
}

// SecurityHeaders adds security headers
func (m *AuthMiddleware) SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	}
}

// RequestID assigns every request an ID, reusing a client-supplied X-Request-ID
func (m *AuthMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDLocalKey,
	})
}

// RequestContext lifts the request ID set by RequestID into c.UserContext()
func (m *AuthMiddleware) RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rid, ok := c.Locals(requestIDLocalKey).(string); ok && rid != "" {
			c.SetUserContext(utils.WithRequestID(c.UserContext(), rid))
		}
		return c.Next()
	}
}

// Protect returns middleware that requires a valid session cookie. Missing, invalid,
// expired, revoked and orphaned tokens all get the same 401.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		token := c.Cookies(m.cookieName)

		user, err := m.usecase.Authenticate(ctx, token)
		if err != nil {
			m.log.WithContext(ctx).Debugf("Rejected request to %s: %v", c.Path(), err)
			return apperrors.WriteError(c, apperrors.NewUnauthenticatedError())
		}

		c.SetUserContext(utils.WithUsername(ctx, user.Username))
		return c.Next()
	}
}
