package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/garagehub/servicing-app/controllers"
	"github.com/garagehub/servicing-app/models"
)

// SetupTechnicianRoutes configures the technician directory routes.
func SetupTechnicianRoutes(app *fiber.App, store *models.Store) {
	ctrl := controllers.NewTechnicianController(store)
	technicians := app.Group("/technicians")

	technicians.Get("/", ctrl.GetTechnicians)
	technicians.Post("/", ctrl.CreateTechnician)
	technicians.Get("/:user_id", ctrl.GetTechnician)
	technicians.Patch("/:user_id", ctrl.PatchTechnician)
	technicians.Delete("/:user_id", ctrl.DeleteTechnician)
	technicians.Post("/:user_id/reviews", ctrl.CreateTechnicianReview)
	technicians.Delete("/:user_id/reviews/:review_id", ctrl.DeleteTechnicianReview)
}
