package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/garagehub/servicing-app/models"
)

// ErrorHandler is the single boundary where domain outcomes become HTTP
// responses. Typed APIErrors pass through with their status; driver
// not-found faults map to 404; everything else is an internal error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{"msg": apiErr.Msg})
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Content not found"})
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Content not found"})
		}
		return c.Status(fiberErr.Code).JSON(fiber.Map{"msg": fiberErr.Message})
	}
	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Internal server error"})
}

// NotFoundHandler terminates the middleware chain for unmatched routes.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": "Content not found"})
}

// parseID turns a path parameter into an ObjectID. Malformed ids are a bad
// request before any lookup happens.
func parseID(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, models.ErrBadRequest
	}
	return id, nil
}

func parseHexID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, models.ErrBadRequest
	}
	return id, nil
}

func parseBody(c *fiber.Ctx) (map[string]any, error) {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return nil, models.ErrBadRequest
	}
	return payload, nil
}
