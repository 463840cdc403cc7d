package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/controllers"
	"github.com/oficiosya/oficios-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/verify", controllers.VerifyEmail)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)

	// Get user by ID
	auth.Get("/user/:id", middleware.Protected(), controllers.GetUserByID)
}
