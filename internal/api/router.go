package api

import (
	"cyber-advisor/docs"
	"cyber-advisor/internal/api/handlers"
	"cyber-advisor/pkg/config"
	"cyber-advisor/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRouter(
	askHandler *handlers.AskHandler,
	adminHandler *handlers.AdminHandler,
	trainingHandler *handlers.TrainingHandler,
	serverCfg config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
	}))
	app.Use(middleware.RequestLogger(appLogger))

	// importing docs registers the swagger documentation
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", trainingHandler.Health)

	api := app.Group("/api/v1")
	api.Post("/ask", askHandler.Ask)
	api.Get("/debug/predict", askHandler.Predict)
	api.Get("/training/stats", trainingHandler.Stats)

	// Reloads answer to GET as well for operators using a browser or curl.
	admin := api.Group("/admin")
	admin.Post("/reload_seed", adminHandler.ReloadSeed)
	admin.Get("/reload_seed", adminHandler.ReloadSeed)
	admin.Post("/reload_advice", adminHandler.ReloadAdvice)
	admin.Get("/reload_advice", adminHandler.ReloadAdvice)

	return app
}
