package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/controllers"
	"github.com/oficiosya/oficios-api/middleware"
)

// SetupReviewRoutes configures review publishing
func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/reviews")
	review.Post("/", middleware.Protected(), middleware.RequirePermission("reviews", "create"), controllers.CreateReview)
	review.Delete("/:id", middleware.Protected(), controllers.DeleteReview)
}
