package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/controllers"
)

// SetupCategoryRoutes configures the public category listing
func SetupCategoryRoutes(app *fiber.App) {
	category := app.Group("/categories")
	category.Get("/", controllers.GetAllCategories)
	category.Get("/:slug", controllers.GetCategory)
}
