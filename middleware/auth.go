package middleware

import (
	"car-doctor-server/errors"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

const identityKey = "identity"

// Authorize verifies the bearer token of the request. Any failure, including
// a missing header, is answered with 401.
func Authorize(secret []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    secret,
		SigningMethod: "HS256",
		ErrorHandler:  jwtError,
		ContextKey:    identityKey,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return errors.RaiseUnauthorizedError(c)
}

// Claims returns the verified token claims, or nil outside Authorize.
func Claims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals(identityKey).(*jwt.Token)
	if !ok {
		return nil
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	return claims
}
