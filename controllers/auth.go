package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/garagehub/servicing-app/middleware"
	"github.com/garagehub/servicing-app/models"
)

type AuthController struct {
	store *models.Store
}

func NewAuthController(store *models.Store) *AuthController {
	return &AuthController{store: store}
}

// Register creates a customer account and answers with a minimal credential
// response.
func (ac *AuthController) Register(c *fiber.Ctx) error {
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
	user, err := ac.store.CreateUser(c.Context(), input)
	if err != nil {
		return err
	}
	token, err := signToken(user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"username": user.Username,
		"id":       user.ID,
		"token":    token,
	})
}

// Login checks the submitted credentials against the stored hash. Unknown
// email and wrong password are indistinguishable to the caller.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type loginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return models.ErrBadRequest
	}
	user, err := ac.store.Authenticate(c.Context(), input.Email, input.Password)
	if err != nil {
		return err
	}
	token, err := signToken(user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Contact.Email,
		"token":    token,
	})
}

// Profile returns the authenticated account.
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	rawID, _ := claims["id"].(string)
	id, err := parseHexID(rawID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := ac.store.FindAccount(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

func signToken(acc *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"id":       acc.ID.Hex(),
		"username": acc.Username,
		"email":    acc.Contact.Email,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTSecret())
}
