package router

import (
	"car-doctor-server/handlers"
	"car-doctor-server/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler, authorize fiber.Handler, log *zap.Logger) {
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/", h.GetRoot)

	//Token
	app.Post("/jwt", h.CreateToken)

	//Services
	services := app.Group("/services")
	services.Get("/", h.GetServices)
	services.Get("/:id", h.GetService)

	//Bookings
	bookings := app.Group("/bookings")
	bookings.Get("/", authorize, h.GetBookings)
	bookings.Post("/", h.CreateBooking)
	bookings.Delete("/:id", h.DeleteBooking)
	bookings.Patch("/:id", h.UpdateBookingStatus)
}
