package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/models"
)

// GetAllCategories returns the trade categories citizens browse
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := db.DB.Order("name").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}
	return c.JSON(categories)
}

func GetCategory(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var category models.Category
	if err := db.DB.Where("slug = ?", slug).First(&category).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	return c.JSON(category)
}
