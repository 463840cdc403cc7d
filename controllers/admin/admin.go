package admin

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/jobs"
	"github.com/oficiosya/oficios-api/models"
)

// GetAllUsers lists user accounts for the back-office
func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var users []models.User
	if err := db.DB.Preload("Role").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	var count int64
	db.DB.Model(&models.User{}).Count(&count)

	for i := range users {
		users[i].Password = ""
		users[i].OTP = ""
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": count,
		"page":  page,
		"limit": limit,
	})
}

// DeleteUser removes a user account and its professional profile
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if db.DB.First(&user, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	// The professional profile (with its schedule document) goes with the
	// account.
	db.DB.Where("user_id = ?", user.ID).Delete(&models.Professional{})
	db.DB.Delete(&user)

	return c.SendStatus(fiber.StatusNoContent)
}

// SetProfessionalVerification toggles the back-office verification mark
func SetProfessionalVerification(c *fiber.Ctx) error {
	id := c.Params("id")

	type VerifyInput struct {
		IsVerified bool `json:"is_verified"`
	}
	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var professional models.Professional
	if db.DB.Preload("User").First(&professional, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}

	professional.IsVerified = input.IsVerified
	if err := db.DB.Save(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update verification",
		})
	}

	if input.IsVerified {
		if task, opts, err := jobs.NewSlackNotifyTask(
			fmt.Sprintf("Profesional verificado: %s (id %d)", professional.User.Name, professional.ID),
		); err == nil {
			jobs.Dispatch(task, opts...)
		}
	}

	professional.User.Password = ""
	professional.User.OTP = ""
	return c.JSON(professional)
}

// CreateCategory adds a trade category
func CreateCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if category.Name == "" || category.Slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and slug are required",
		})
	}

	var existing models.Category
	if db.DB.Where("slug = ?", category.Slug).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category with this slug already exists",
		})
	}

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory edits a trade category
func UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if db.DB.First(&category, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := db.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(category)
}

// DeleteCategory removes a trade category without services attached
func DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category models.Category
	if db.DB.First(&category, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	var serviceCount int64
	db.DB.Model(&models.Service{}).Where("category_id = ?", category.ID).Count(&serviceCount)
	if serviceCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category has services attached",
		})
	}

	db.DB.Delete(&category)
	return c.SendStatus(fiber.StatusNoContent)
}
