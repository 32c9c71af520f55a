package handlers

import (
	"car-doctor-server/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) CreateToken(c *fiber.Ctx) error {
	payload, err := parseObject(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, "token payload must be a JSON object")
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		h.log.Error("cannot sign token", zap.Error(err))
		return errors.RaiseInternalServerError(c)
	}

	return c.JSON(fiber.Map{"token": token})
}
