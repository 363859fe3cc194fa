package config

import (
	"cuisto-web/internal/api/handlers"
	"cuisto-web/internal/api/routes"
	"cuisto-web/internal/middleware"
	"cuisto-web/internal/utils"
	"cuisto-web/internal/utils/mailing"
	"cuisto-web/internal/utils/storage"
	"cuisto-web/pkg/blog"
	"cuisto-web/pkg/discovery"
	"cuisto-web/pkg/jwt"
	"cuisto-web/pkg/recipe"
	"cuisto-web/pkg/sitemap"
	"cuisto-web/pkg/waitlist"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NewApp wires the API. db may be nil, in which case the routes that need
// the data store answer 503.
func NewApp(db *gorm.DB, log zerolog.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:     "cuisto-web",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("CORS_ALLOW_ORIGINS"))
	validator := utils.Validate
	siteURL := utils.GetConfig("SITE_URL")

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening access log: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3(log)
	mailer := mailing.NewSMTPMailer(mailing.LoadMailConfig())

	// Repository
	var (
		recipeRepository    recipe.RecipeRepository
		discoveryRepository discovery.DiscoveryRepository
		blogRepository      blog.BlogRepository
		waitlistRepository  waitlist.WaitlistRepository
	)
	if db != nil {
		recipeRepository = recipe.NewRecipeRepository(db)
		discoveryRepository = discovery.NewDiscoveryRepository(db)
		blogRepository = blog.NewBlogRepository(db)
		waitlistRepository = waitlist.NewWaitlistRepository(db)
	} else {
		log.Warn().Msg("no data store configured, data routes will answer 503")
	}

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	recipeService := recipe.NewRecipeService(recipeRepository, s3, siteURL)
	discoveryService := discovery.NewDiscoveryService(
		discoveryRepository,
		s3,
		log,
		utils.GetDuration("DISCOVERY_QUERY_TIMEOUT", discovery.DefaultQueryTimeout),
	)
	blogService := blog.NewBlogService(blogRepository, s3, siteURL)
	waitlistService := waitlist.NewWaitlistService(waitlist.WaitlistDeps{
		Repository: waitlistRepository,
		JWT:        jwtService,
		Mailer:     mailer,
		Validator:  validator,
		Logger:     log,
		HashKey:    utils.GetConfig("AES_KEY"),
		AppURL:     utils.GetConfig("APP_URL"),
	})
	sitemapService := sitemap.NewSitemapService(recipeRepository, blogRepository, siteURL, log)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, discoveryService, validator)
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService, validator, siteURL)
	blogHandler := handlers.NewBlogHandler(blogService)
	waitlistHandler := handlers.NewWaitlistHandler(waitlistService)
	pageHandler := handlers.NewPageHandler(sitemapService, siteURL)

	// routes
	routesConfig := routes.Config{
		App:              app,
		RecipeHandler:    recipeHandler,
		DiscoveryHandler: discoveryHandler,
		BlogHandler:      blogHandler,
		WaitlistHandler:  waitlistHandler,
		PageHandler:      pageHandler,
		Middleware:       middlewares,
		MetricsHandler:   adaptor.HTTPHandler(promhttp.Handler()),
		StoreReady:       db != nil,
		CacheTTL:         utils.GetDuration("REVALIDATE_SECONDS", time.Hour),
		RequestTimeout:   utils.GetDuration("REQUEST_TIMEOUT", 15*time.Second),
	}
	routesConfig.Setup()
	return app, nil
}
