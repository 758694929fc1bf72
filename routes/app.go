package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/garagehub/servicing-app/controllers"
	"github.com/garagehub/servicing-app/models"
)

// NewApp assembles the fiber application around an injected store: error
// boundary, CORS, request logging, every resource's routes and the
// unmatched-route 404.
func NewApp(store *models.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(logger.New())

	SetupAuthRoutes(app, store)
	SetupTechnicianRoutes(app, store)
	SetupUserRoutes(app, store)

	app.Use(controllers.NotFoundHandler)

	return app
}
