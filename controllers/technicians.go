package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/garagehub/servicing-app/models"
)

type TechnicianController struct {
	store *models.Store
}

func NewTechnicianController(store *models.Store) *TechnicianController {
	return &TechnicianController{store: store}
}

// GetTechnicians returns all technician accounts, optionally filtered by
// service name and sorted by rating or review count.
func (tc *TechnicianController) GetTechnicians(c *fiber.Ctx) error {
	technicians, err := tc.store.FindTechnicians(
		c.Context(),
		c.Query("service"),
		c.Query("sort_by"),
		c.Query("order"),
	)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"technicians": technicians})
}

// GetTechnician returns one technician with its reviews denormalized.
func (tc *TechnicianController) GetTechnician(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	technician, err := tc.store.FindTechnician(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"technician": technician})
}

// CreateTechnician registers a new technician account.
func (tc *TechnicianController) CreateTechnician(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return err
	}
	tech, err := models.ParseTechnicianCreate(payload)
	if err != nil {
		return err
	}
	input := new(models.TechnicianInput)
	if err := c.BodyParser(input); err != nil {
		return models.ErrBadRequest
	}
	input.Technician = tech
	technician, err := tc.store.CreateTechnician(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"technician": technician})
}

// PatchTechnician appends a service to the technician's offerings.
func (tc *TechnicianController) PatchTechnician(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	payload, err := parseBody(c)
	if err != nil {
		return err
	}
	svc, err := models.ParseServiceUpdate(payload)
	if err != nil {
		return err
	}
	technician, err := tc.store.AddTechnicianService(c.Context(), id, svc)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"technician": technician})
}

// DeleteTechnician removes the technician capability, leaving a plain
// customer account behind.
func (tc *TechnicianController) DeleteTechnician(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	user, err := tc.store.RemoveTechnician(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// CreateTechnicianReview appends a review to the technician's received
// reviews.
func (tc *TechnicianController) CreateTechnicianReview(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	payload, err := parseBody(c)
	if err != nil {
		return err
	}
	review, err := models.ParseReview(payload)
	if err != nil {
		return err
	}
	technician, err := tc.store.AddTechnicianReview(c.Context(), id, review)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"technician": technician})
}

// DeleteTechnicianReview removes a technician review by its sub-id.
func (tc *TechnicianController) DeleteTechnicianReview(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return err
	}
	if err := tc.store.RemoveTechnicianReview(c.Context(), id, reviewID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
