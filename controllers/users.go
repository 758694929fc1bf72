package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/garagehub/servicing-app/models"
)

type UserController struct {
	store *models.Store
}

func NewUserController(store *models.Store) *UserController {
	return &UserController{store: store}
}

// GetUsers returns all plain customer accounts.
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := uc.store.FindUsers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": users})
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	user, err := uc.store.FindUser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// CreateUser adds a plain customer account.
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := models.CheckRegisterShape(payload); err != nil {
		return err
	}
	input := new(models.RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return models.ErrBadRequest
	}
	user, err := uc.store.CreateUser(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	if err := uc.store.RemoveUser(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserReviews lists the reviews an account received as a customer, with
// reviewer snapshots attached.
func (uc *UserController) GetUserReviews(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	reviews, err := uc.store.FindUserReviews(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

func (uc *UserController) CreateUserReview(c *fiber.Ctx) error {
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
	user, err := uc.store.AddUserReview(c.Context(), id, review)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// PatchUserReview updates a review's body and rating in place.
func (uc *UserController) PatchUserReview(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return err
	}
	payload, err := parseBody(c)
	if err != nil {
		return err
	}
	review, err := models.ParseReviewUpdate(payload)
	if err != nil {
		return err
	}
	if review.ID != reviewID {
		return models.ErrBadRequest
	}
	user, err := uc.store.UpdateUserReview(c.Context(), id, review)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

func (uc *UserController) DeleteUserReview(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return err
	}
	if err := uc.store.DeleteUserReview(c.Context(), id, reviewID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type orderInput struct {
	Services    []models.Service `json:"services"`
	CreatedAt   time.Time        `json:"createdAt"`
	FulfilledAt *time.Time       `json:"fulfilledAt"`
	ServicedBy  string           `json:"servicedBy"`
}

func (uc *UserController) GetUserOrders(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	orders, err := uc.store.FindUserOrders(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// CreateUserOrder appends an order holding a snapshot of the purchased
// services.
func (uc *UserController) CreateUserOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	payload, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := models.CheckOrderKeys(payload); err != nil {
		return err
	}
	input := new(orderInput)
	if err := c.BodyParser(input); err != nil {
		return models.ErrBadRequest
	}
	servicedBy, err := primitive.ObjectIDFromHex(input.ServicedBy)
	if err != nil {
		return models.ErrBadRequest
	}
	order := models.Order{
		Services:    input.Services,
		CreatedAt:   input.CreatedAt,
		FulfilledAt: input.FulfilledAt,
		ServicedBy:  servicedBy,
	}
	user, err := uc.store.AddUserOrder(c.Context(), id, order)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// PatchUserOrder replaces the matched order's services array.
func (uc *UserController) PatchUserOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	orderID, err := parseID(c, "order_id")
	if err != nil {
		return err
	}
	payload, err := parseBody(c)
	if err != nil {
		return err
	}
	if err := models.CheckOrderUpdateKeys(payload); err != nil {
		return err
	}
	input := new(orderInput)
	if err := c.BodyParser(input); err != nil {
		return models.ErrBadRequest
	}
	user, err := uc.store.UpdateUserOrder(c.Context(), id, orderID, input.Services)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

func (uc *UserController) DeleteUserOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	orderID, err := parseID(c, "order_id")
	if err != nil {
		return err
	}
	if err := uc.store.DeleteUserOrder(c.Context(), id, orderID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
