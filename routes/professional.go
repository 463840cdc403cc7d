package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/controllers"
	"github.com/oficiosya/oficios-api/middleware"
)

// SetupProfessionalRoutes configures discovery and profile management
func SetupProfessionalRoutes(app *fiber.App) {
	professional := app.Group("/professionals")

	// Public discovery
	professional.Get("/", controllers.GetAllProfessionals)
	professional.Get("/search", controllers.SearchProfessionals)
	professional.Get("/:id", controllers.GetProfessionalDetails)
	professional.Get("/:id/availability", controllers.GetProfessionalAvailability)
	professional.Get("/:id/reviews", controllers.GetProfessionalReviews)

	// Registration creates user + profile + first service atomically
	professional.Post("/", controllers.RegisterProfessional)

	// Profile management
	professional.Patch("/profile", middleware.Protected(), middleware.RequirePermission("professionals", "update"), controllers.UpdateProfessionalProfile)
	professional.Post("/profile/photo", middleware.Protected(), middleware.RequirePermission("professionals", "update"), controllers.UploadProfessionalPhoto)

	// Weekly schedule, replaced wholesale
	professional.Get("/profile/schedule", middleware.Protected(), controllers.GetSchedule)
	professional.Put("/profile/schedule", middleware.Protected(), middleware.RequirePermission("schedules", "update"), controllers.UpdateSchedule)
	professional.Delete("/profile/schedule", middleware.Protected(), middleware.RequirePermission("schedules", "update"), controllers.DeleteSchedule)
}
