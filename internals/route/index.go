// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"asafs_backend/internals/configs"
	paymentService "asafs_backend/internals/features/payment/donations/service"
	authService "asafs_backend/internals/features/users/auth/service"
	"asafs_backend/internals/helpers/mailer"
	"asafs_backend/internals/helpers/storage"
	"asafs_backend/internals/middlewares"
	authMiddleware "asafs_backend/internals/middlewares/auth"
	"asafs_backend/internals/middlewares/logger"
	routeDetails "asafs_backend/internals/route/details"
)

// BodyLimit leaves room for a 5MB image plus form fields.
const BodyLimit = 6 << 20

// Deps are the process-wide collaborators every feature is built from.
type Deps struct {
	DB       *gorm.DB
	Config   configs.Config
	Log      zerolog.Logger
	Mailer   *mailer.Mailer
	Images   storage.ImageStore
	Payments paymentService.Gateway

	// UploadDir is served at /uploads when images are stored locally.
	UploadDir string
}

var startTime time.Time

// NewApp builds the fiber app with the middleware chain and every route.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             BodyLimit,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          middlewares.ErrorHandler(d.Config.Env, d.Log),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware(d.Log))
	app.Use(logger.RequestID())
	app.Use(logger.LoggerMiddleware(d.Log))
	app.Use(middlewares.CorsMiddleware(d.Config.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.GlobalRateLimiter())

	SetupRoutes(app, d)
	app.Use(middlewares.NotFoundHandler)
	return app
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB)
	if d.UploadDir != "" {
		app.Static(storage.DefaultPublicPrefix, d.UploadDir, fiber.Static{MaxAge: 86400})
	}

	tokens := authService.NewTokenService(d.Config.JWTSecret)
	auth := authService.NewAuthService(d.DB, tokens)
	authMw := authMiddleware.AuthMiddleware(tokens, auth, d.Log)

	api := app.Group("/api")

	d.Log.Debug().Msg("mounting auth routes")
	routeDetails.AuthRoutes(api, auth, authMw)

	d.Log.Debug().Msg("mounting content routes")
	routeDetails.ContentRoutes(api, d.DB, d.Images, d.Log, authMw)

	d.Log.Debug().Msg("mounting communication routes")
	routeDetails.CommunicationRoutes(api, d.DB, d.Mailer, authMw)

	d.Log.Debug().Msg("mounting settings routes")
	routeDetails.SettingsRoutes(api, d.DB, authMw)

	d.Log.Debug().Msg("mounting payment routes")
	routeDetails.PaymentRoutes(api, d.Payments, d.Log)
}
