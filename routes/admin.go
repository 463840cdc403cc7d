package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/controllers/admin"
	"github.com/oficiosya/oficios-api/middleware"
)

// SetupAdminRoutes configures the back-office
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.Protected(), middleware.RequireRole("admin"))

	adminGroup.Get("/users", admin.GetAllUsers)
	adminGroup.Delete("/users/:id", admin.DeleteUser)

	adminGroup.Patch("/professionals/:id/verification", admin.SetProfessionalVerification)

	adminGroup.Post("/categories", admin.CreateCategory)
	adminGroup.Patch("/categories/:id", admin.UpdateCategory)
	adminGroup.Delete("/categories/:id", admin.DeleteCategory)
}
