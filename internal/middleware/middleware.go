package middleware

import (
	"context"
	"cuisto-web/domain"
	"cuisto-web/internal/api/presenters"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"golang.org/x/text/language"
)

const LocaleKey = "locale"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		LocaleMiddleware() fiber.Handler
		StoreMiddleware(ready bool) fiber.Handler
		RequestContextMiddleware(timeout time.Duration) fiber.Handler
	}

	middleware struct {
		allowOrigins string
	}
)

// supportedTags is ordered like domain.SupportedLocales; the first entry
// is the fallback.
var (
	supportedTags = []language.Tag{language.English, language.French}
	matcher       = language.NewMatcher(supportedTags)
)

func NewMiddleware(allowOrigins string) Middleware {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return &middleware{allowOrigins: allowOrigins}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language",
	})
}

// LocaleMiddleware stores the request locale in c.Locals(LocaleKey).
func (m *middleware) LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocaleKey, NegotiateLocale(c.Params("locale"), c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}

// StoreMiddleware answers 503 on routes that need the data store while
// none is configured.
func (m *middleware) StoreMiddleware(ready bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !ready {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageStoreNotReady, domain.ErrStoreNotReady)
		}
		return c.Next()
	}
}

// RequestContextMiddleware gives handlers a user context that is cancelled
// once the response is written or the timeout elapses, so store queries
// started for the request do not outlive it. A zero timeout only cancels.
func (m *middleware) RequestContextMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			ctx    context.Context
			cancel context.CancelFunc
		)
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(c.UserContext(), timeout)
		} else {
			ctx, cancel = context.WithCancel(c.UserContext())
		}
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// NegotiateLocale picks the route locale when it is supported, otherwise
// the best Accept-Language match, otherwise the default locale.
func NegotiateLocale(param, acceptLanguage string) string {
	param = strings.ToLower(strings.TrimSpace(param))
	if domain.IsSupportedLocale(param) {
		return param
	}
	if acceptLanguage == "" {
		return domain.DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return domain.DefaultLocale
	}
	return domain.SupportedLocales[index]
}

// Locale reads the locale stored by LocaleMiddleware.
func Locale(c *fiber.Ctx) string {
	if locale, ok := c.Locals(LocaleKey).(string); ok && locale != "" {
		return locale
	}
	return domain.DefaultLocale
}
