package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
)

// JWTSecret returns the HS256 signing key. The fallback keeps local
// development working without a .env file.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key"
	}
	return []byte(secret)
}

// Protected guards a route behind a valid bearer token.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   JWTSecret(),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": "Unauthorized"})
}
