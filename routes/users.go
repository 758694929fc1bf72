package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/garagehub/servicing-app/controllers"
	"github.com/garagehub/servicing-app/models"
)

// SetupUserRoutes configures the customer-facing account routes and the
// reviews/orders sub-resources.
func SetupUserRoutes(app *fiber.App, store *models.Store) {
	ctrl := controllers.NewUserController(store)
	users := app.Group("/users")

	users.Get("/", ctrl.GetUsers)
	users.Post("/", ctrl.CreateUser)
	users.Get("/:user_id", ctrl.GetUser)
	users.Delete("/:user_id", ctrl.DeleteUser)

	users.Get("/:user_id/reviews", ctrl.GetUserReviews)
	users.Post("/:user_id/reviews", ctrl.CreateUserReview)
	users.Patch("/:user_id/reviews/:review_id", ctrl.PatchUserReview)
	users.Delete("/:user_id/reviews/:review_id", ctrl.DeleteUserReview)

	users.Get("/:user_id/orders", ctrl.GetUserOrders)
	users.Post("/:user_id/orders", ctrl.CreateUserOrder)
	users.Patch("/:user_id/orders/:order_id", ctrl.PatchUserOrder)
	users.Delete("/:user_id/orders/:order_id", ctrl.DeleteUserOrder)
}
