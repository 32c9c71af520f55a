package handlers

import (
	"car-doctor-server/database"
	"car-doctor-server/errors"
	"encoding/json"
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TokenIssuer interface {
	Issue(payload map[string]interface{}) (string, error)
}

// Handler carries the dependencies shared by all routes.
type Handler struct {
	services database.ServiceRepository
	bookings database.BookingRepository
	tokens   TokenIssuer
	log      *zap.Logger
}

func NewHandler(services database.ServiceRepository, bookings database.BookingRepository, tokens TokenIssuer, log *zap.Logger) *Handler {
	return &Handler{
		services: services,
		bookings: bookings,
		tokens:   tokens,
		log:      log,
	}
}

func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.SendString("server is running")
}

// storeError answers malformed ids itself and hands everything else to the
// app error handler.
func storeError(c *fiber.Ctx, err error) error {
	if stderrors.Is(err, database.ErrInvalidID) {
		return errors.RaiseBadRequestError(c, "invalid id")
	}
	return err
}

// parseObject decodes a JSON object body. An empty body is an empty object.
func parseObject(c *fiber.Ctx) (map[string]interface{}, error) {
	object := map[string]interface{}{}
	if len(c.Body()) == 0 {
		return object, nil
	}
	if err := json.Unmarshal(c.Body(), &object); err != nil {
		return nil, err
	}
	if object == nil {
		// literal null
		object = map[string]interface{}{}
	}
	return object, nil
}
