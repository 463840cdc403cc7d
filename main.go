package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/oficiosya/oficios-api/cron"
	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/jobs"
	"github.com/oficiosya/oficios-api/redis"
	"github.com/oficiosya/oficios-api/routes"
)

func main() {
	app := fiber.New()
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()
	jobs.InitClient()
	jobs.InitWorker()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("OficiosYa API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupCategoryRoutes(app)
	routes.SetupProfessionalRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupReviewRoutes(app)
	routes.SetupAdminRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
