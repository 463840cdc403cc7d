package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/models"
)

// GetProfessionalReviews returns all reviews for a professional
func GetProfessionalReviews(c *fiber.Ctx) error {
	id := c.Params("id")

	var reviews []models.Review
	if err := db.DB.Preload("Customer").Preload("Service").
		Where("professional_id = ?", id).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	for i := range reviews {
		reviews[i].Customer.Password = ""
		reviews[i].Customer.OTP = ""
		if reviews[i].IsAnonymous {
			reviews[i].Customer = models.User{}
		}
	}

	return c.JSON(reviews)
}

// CreateReview publishes a review from the logged-in citizen
func CreateReview(c *fiber.Ctx) error {
	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	review.CustomerID = c.Locals("userID").(uint)

	var professional models.Professional
	if err := db.DB.First(&professional, review.ProfessionalID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this service",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// DeleteReview removes a review; only the author or an admin can do it
func DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var review models.Review
	if db.DB.First(&review, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	if review.CustomerID != userID && role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only delete your own reviews",
		})
	}

	db.DB.Delete(&review)
	return c.SendStatus(fiber.StatusNoContent)
}
