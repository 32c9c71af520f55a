package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetServices lists the catalog. search filters titles, sort=asc orders by
// ascending price and anything else by descending price.
func (h *Handler) GetServices(c *fiber.Ctx) error {
	services, err := h.services.ListServices(c.UserContext(), c.Query("search"), c.Query("sort") == "asc")
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(services)
}

// GetService answers JSON null when nothing matches the id.
func (h *Handler) GetService(c *fiber.Ctx) error {
	service, err := h.services.GetService(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(service)
}
