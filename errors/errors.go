package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Response is the body of every error reply.
type Response struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func RaiseError(context *fiber.Ctx, status int, message string) error {
	return context.Status(status).JSON(Response{Error: true, Message: message})
}

func RaiseUnauthorizedError(context *fiber.Ctx) error {
	return RaiseError(context, fiber.StatusUnauthorized, "unauthorized access")
}

func RaiseForbiddenError(context *fiber.Ctx) error {
	return RaiseError(context, fiber.StatusForbidden, "forbidden")
}

func RaiseBadRequestError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusBadRequest, message)
}

func RaiseInternalServerError(context *fiber.Ctx) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal server error")
}

// Handler is the app-wide fiber.ErrorHandler. Errors that handlers return
// instead of answering themselves end up here.
func Handler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			return RaiseError(c, fiberErr.Code, fiberErr.Message)
		}

		log.Error("request failed",
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.Error(err))
		return RaiseInternalServerError(c)
	}
}
