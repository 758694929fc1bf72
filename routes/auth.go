package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/garagehub/servicing-app/controllers"
	"github.com/garagehub/servicing-app/middleware"
	"github.com/garagehub/servicing-app/models"
)

// SetupAuthRoutes configures registration, login and the authenticated
// profile route. Registered before the user routes so /users/register is not
// swallowed by /users/:user_id.
func SetupAuthRoutes(app *fiber.App, store *models.Store) {
	ctrl := controllers.NewAuthController(store)

	app.Post("/users/register", ctrl.Register)
	app.Post("/login", ctrl.Login)
	app.Get("/user", middleware.Protected(), ctrl.Profile)
}
