package handlers

import (
	"car-doctor-server/errors"
	"car-doctor-server/middleware"
	"car-doctor-server/model"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	body, err := parseObject(c)
	if err != nil {
		return errors.RaiseBadRequestError(c, "booking must be a JSON object")
	}

	result, err := h.bookings.CreateBooking(c.UserContext(), model.Booking(body))
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(result)
}

// GetBookings must run behind middleware.Authorize. The token email claim
// and the email query value have to be both absent or both present and
// equal; without an email query every booking is returned, which only a
// token without an email claim can reach.
func (h *Handler) GetBookings(c *fiber.Ctx) error {
	email := c.Query("email")
	claim, hasClaim := middleware.Claims(c)["email"]
	hasQuery := c.Context().QueryArgs().Has("email")
	h.log.Debug("listing bookings",
		zap.String("email", email),
		zap.Any("token_email", claim))

	if !ownsBookings(claim, hasClaim, email, hasQuery) {
		return errors.RaiseForbiddenError(c)
	}

	bookings, err := h.bookings.ListBookings(c.UserContext(), email)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(bookings)
}

func ownsBookings(claim interface{}, hasClaim bool, email string, hasQuery bool) bool {
	if !hasClaim || !hasQuery {
		return !hasClaim && !hasQuery
	}
	tokenEmail, ok := claim.(string)
	return ok && tokenEmail == email
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	result, err := h.bookings.DeleteBooking(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(result)
}

// UpdateBookingStatus only ever changes status, whatever else the body holds.
func (h *Handler) UpdateBookingStatus(c *fiber.Ctx) error {
	var update model.StatusUpdate
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &update); err != nil {
			return errors.RaiseBadRequestError(c, "incorrect input for booking status")
		}
	}
	h.log.Debug("updating booking status",
		zap.String("id", c.Params("id")),
		zap.String("status", update.Status))

	result, err := h.bookings.UpdateBookingStatus(c.UserContext(), c.Params("id"), update.Status)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(result)
}
