package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/models"
)

// GetAllServices returns all active services
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service

	query := db.DB.Preload("Category").Preload("Professional.User").
		Where("is_active = ?", true)
	if slug := c.Query("category"); slug != "" {
		query = query.Joins("JOIN categories ON categories.id = services.category_id").
			Where("categories.slug = ?", slug)
	}

	if err := query.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for i := range services {
		services[i].Professional.User.Password = ""
		services[i].Professional.User.OTP = ""
	}

	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.Preload("Category").Preload("Professional.User").
		First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	service.Professional.User.Password = ""
	service.Professional.User.OTP = ""
	return c.JSON(service)
}

// CreateService creates a new service for the logged-in professional
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	professional, ok := professionalForUser(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional profile not found",
		})
	}

	newService := models.Service{
		Title:          service.Title,
		Description:    service.Description,
		PriceFrom:      service.PriceFrom,
		PriceTo:        service.PriceTo,
		CategoryID:     service.CategoryID,
		ProfessionalID: professional.ID,
		IsActive:       true,
	}
	if newService.CategoryID == 0 {
		newService.CategoryID = professional.CategoryID
	}

	if err := db.DB.Create(&newService).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(newService)
}

// UpdateService updates a service owned by the logged-in professional
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	professional, ok := professionalForUser(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional profile not found",
		})
	}

	var existingService models.Service
	if db.DB.First(&existingService, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if existingService.ProfessionalID != professional.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only edit your own services",
		})
	}

	service.ID = existingService.ID
	service.ProfessionalID = existingService.ProfessionalID
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}
	return c.JSON(service)
}

// DeleteService deletes a service owned by the logged-in professional
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")

	professional, ok := professionalForUser(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional profile not found",
		})
	}

	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if service.ProfessionalID != professional.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only delete your own services",
		})
	}

	db.DB.Delete(&service)
	return c.SendStatus(fiber.StatusNoContent)
}

func professionalForUser(c *fiber.Ctx) (*models.Professional, bool) {
	userID := c.Locals("userID").(uint)
	var professional models.Professional
	if db.DB.Where("user_id = ?", userID).First(&professional).RowsAffected == 0 {
		return nil, false
	}
	return &professional, true
}
