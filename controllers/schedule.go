package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/availability"
	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/models"
	"github.com/oficiosya/oficios-api/redis"
	"github.com/oficiosya/oficios-api/utils"
)

// GetSchedule returns the logged-in professional's weekly schedule.
func GetSchedule(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var professional models.Professional
	if db.DB.Where("user_id = ?", userID).First(&professional).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional profile not found",
		})
	}

	return c.JSON(fiber.Map{
		"schedule": professional.Schedule,
	})
}

// UpdateSchedule replaces the weekly schedule wholesale. Malformed time
// strings are rejected here so evaluation never sees them.
func UpdateSchedule(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var professional models.Professional
	if db.DB.Where("user_id = ?", userID).First(&professional).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional profile not found",
		})
	}

	schedule := new(models.WeeklySchedule)
	if err := c.BodyParser(schedule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := schedule.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid schedule",
			Error:   err.Error(),
		})
	}

	professional.Schedule = schedule
	if err := db.DB.Save(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update schedule",
		})
	}

	// Drop the cached badge so the change shows up immediately.
	if redis.Client != nil {
		redis.Client.Del(redis.Ctx, fmt.Sprintf("availability:%d", professional.ID))
	}

	return c.JSON(fiber.Map{
		"schedule":     professional.Schedule,
		"availability": availability.Evaluate(professional.Schedule, time.Now()),
	})
}

// DeleteSchedule removes the schedule entirely, reverting the professional
// to the "always open" fallback.
func DeleteSchedule(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var professional models.Professional
	if db.DB.Where("user_id = ?", userID).First(&professional).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional profile not found",
		})
	}

	if err := db.DB.Model(&professional).Update("schedule", nil).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete schedule",
		})
	}

	if redis.Client != nil {
		redis.Client.Del(redis.Ctx, fmt.Sprintf("availability:%d", professional.ID))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetProfessionalAvailability exposes the badge for a single professional,
// mainly for the polling frontend component.
func GetProfessionalAvailability(c *fiber.Ctx) error {
	id := c.Params("id")

	var professional models.Professional
	if err := db.DB.First(&professional, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}

	return c.JSON(availabilityFor(&professional))
}
