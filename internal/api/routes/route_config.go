package routes

import (
	"cuisto-web/domain"
	"cuisto-web/internal/api/handlers"
	"cuisto-web/internal/api/presenters"
	"cuisto-web/internal/middleware"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	waitlistMaxRequests = 5
	waitlistWindow      = time.Minute

	localizedPrefix = "/api/v1/"
)

var errTooManyRequests = errors.New("too many requests")

type Config struct {
	App              *fiber.App
	RecipeHandler    handlers.RecipeHandler
	DiscoveryHandler handlers.DiscoveryHandler
	BlogHandler      handlers.BlogHandler
	WaitlistHandler  handlers.WaitlistHandler
	PageHandler      handlers.PageHandler
	Middleware       middleware.Middleware
	MetricsHandler   fiber.Handler
	// StoreReady is false when no data store is configured.
	StoreReady bool
	// CacheTTL of public pages; zero disables the page cache.
	CacheTTL time.Duration
	// RequestTimeout bounds the user context handed to services.
	RequestTimeout time.Duration
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestContextMiddleware(c.RequestTimeout))
	c.GuestRoute()
	c.Localized()
	c.Waitlist()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", c.PageHandler.RedirectHome)
	c.App.Get("/api/ping", c.PageHandler.Ping)
	c.App.Get("/sitemap.xml", c.pageCache(), c.PageHandler.GetSitemap)
	if c.MetricsHandler != nil {
		c.App.Get("/metrics", c.MetricsHandler)
	}
}

func (c *Config) Localized() {
	locale := c.Middleware.LocaleMiddleware()
	store := c.Middleware.StoreMiddleware(c.StoreReady)
	api := c.App.Group(localizedPrefix+":locale", c.pageCache())
	// localized routes
	{
		api.Get("/home", locale, store, c.DiscoveryHandler.GetHome)
		api.Get("/categories", locale, store, c.DiscoveryHandler.GetCategories)

		api.Get("/recipes", locale, store, c.RecipeHandler.GetRecipes)
		api.Get("/recipes/discovery", locale, store, c.DiscoveryHandler.GetDiscovery)
		api.Get("/recipes/popular", locale, store, c.DiscoveryHandler.GetPopularRecipes)
		api.Get("/recipes/:slug", locale, store, c.RecipeHandler.GetRecipeDetail)

		api.Get("/blog", locale, store, c.BlogHandler.GetPosts)
		api.Get("/blog/:slug", locale, store, c.BlogHandler.GetPostDetail)

		api.Get("/legal/:page", locale, c.PageHandler.GetLegalPage)
	}
}

func (c *Config) Waitlist() {
	waitlist := c.App.Group("/api/waitlist")
	waitlist.Post("", limiter.New(limiter.Config{
		Max:          waitlistMaxRequests,
		Expiration:   waitlistWindow,
		KeyGenerator: limiterKey,
		LimitReached: func(c *fiber.Ctx) error {
			return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageWaitlistFailed, errTooManyRequests)
		},
	}), c.WaitlistHandler.Join)
	waitlist.Get("/unsubscribe", c.WaitlistHandler.Unsubscribe)
}

// pageCache keeps GET responses per full URL and resolved locale for CacheTTL.
func (c *Config) pageCache() fiber.Handler {
	return cache.New(cache.Config{
		Next: func(ctx *fiber.Ctx) bool {
			return c.CacheTTL <= 0
		},
		Expiration:   c.CacheTTL,
		CacheControl: true,
		KeyGenerator: pageCacheKey,
	})
}

// pageCacheKey adds the negotiated locale to the URL, since an unsupported
// :locale segment resolves through Accept-Language.
func pageCacheKey(c *fiber.Ctx) string {
	key := strings.Clone(c.OriginalURL())
	rest, ok := strings.CutPrefix(c.Path(), localizedPrefix)
	if !ok {
		return key
	}
	segment, _, _ := strings.Cut(rest, "/")
	return key + "|" + middleware.NegotiateLocale(segment, c.Get(fiber.HeaderAcceptLanguage))
}

func limiterKey(c *fiber.Ctx) string {
	if ips := c.IPs(); len(ips) > 0 {
		return ips[0]
	}
	return c.IP()
}
