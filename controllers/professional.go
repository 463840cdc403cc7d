package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oficiosya/oficios-api/availability"
	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/jobs"
	"github.com/oficiosya/oficios-api/models"
	"github.com/oficiosya/oficios-api/redis"
	"github.com/oficiosya/oficios-api/utils"
)

// RegisterProfessionalInput bundles everything a tradesperson sends at
// sign-up: the account, the profile and the first listed service.
type RegisterProfessionalInput struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	CategoryID  uint    `json:"category_id" validate:"required"`
	Bio         string  `json:"bio"`
	PhoneNumber string  `json:"phone_number" validate:"required"`
	Address     string  `json:"address"`
	City        string  `json:"city" validate:"required"`
	Province    string  `json:"province" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	PriceFrom   float64 `json:"price_from"`
	PriceTo     float64 `json:"price_to"`
}

// RegisterProfessional creates the user account, the professional profile
// and the first service in a single transaction, so a partial registration
// can never be observed.
func RegisterProfessional(c *fiber.Ctx) error {
	input := new(RegisterProfessionalInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := utils.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid registration data",
			Error:   err.Error(),
		})
	}

	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	var category models.Category
	if err := db.DB.First(&category, input.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	var professionalRole models.Role
	if err := db.DB.Where("name = ?", "professional").First(&professionalRole).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Role 'professional' not found",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashedPassword),
		RoleID:       professionalRole.ID,
		OTP:          utils.GenerateOTP(),
		OTPExpiresAt: time.Now().Add(15 * time.Minute),
	}
	professional := models.Professional{
		CategoryID:  input.CategoryID,
		Bio:         input.Bio,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		City:        input.City,
		Province:    input.Province,
	}
	service := models.Service{
		Title:       input.Title,
		Description: input.Description,
		PriceFrom:   input.PriceFrom,
		PriceTo:     input.PriceTo,
		CategoryID:  input.CategoryID,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		professional.UserID = user.ID
		if err := tx.Create(&professional).Error; err != nil {
			return err
		}
		service.ProfessionalID = professional.ID
		return tx.Create(&service).Error
	})
	if err != nil {
		log.Printf("Professional registration failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to register professional",
			Error:   err.Error(),
		})
	}

	if task, opts, err := jobs.NewEmailVerifyTask(user.ID); err == nil {
		jobs.Dispatch(task, opts...)
	}
	if task, opts, err := jobs.NewSlackNotifyTask(
		fmt.Sprintf("Nuevo profesional registrado: %s (%s, %s)", user.Name, category.Name, professional.City),
	); err == nil {
		jobs.Dispatch(task, opts...)
	}

	user.Password = ""
	user.OTP = ""
	professional.User = user

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"professional": professional,
		"service":      service,
	})
}

// clampPagination guards against zero or negative paging values from the
// query string; a zero limit would divide by zero when computing the page
// count.
func clampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// GetAllProfessionals returns professionals filtered by category slug and
// city, paginated, each with its current availability badge.
func GetAllProfessionals(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, limit = clampPagination(page, limit)
	categorySlug := c.Query("category")
	city := c.Query("city")

	offset := (page - 1) * limit

	filtered := func(tx *gorm.DB) *gorm.DB {
		if categorySlug != "" {
			tx = tx.Joins("JOIN categories ON categories.id = professionals.category_id").
				Where("categories.slug = ?", categorySlug)
		}
		if city != "" {
			tx = tx.Where("professionals.city ILIKE ?", city)
		}
		return tx
	}

	var count int64
	filtered(db.DB.Model(&models.Professional{})).Count(&count)

	var professionals []models.Professional
	if err := filtered(db.DB.Preload("User").Preload("Category")).
		Limit(limit).Offset(offset).Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch professionals",
		})
	}

	results := make([]fiber.Map, 0, len(professionals))
	for i := range professionals {
		professionals[i].User.Password = ""
		professionals[i].User.OTP = ""
		results = append(results, fiber.Map{
			"professional": professionals[i],
			"availability": availabilityFor(&professionals[i]),
		})
	}

	return c.JSON(fiber.Map{
		"professionals": results,
		"total":         count,
		"page":          page,
		"limit":         limit,
		"pages":         (int(count) + limit - 1) / limit,
	})
}

// SearchProfessionals searches by name, bio or service title.
func SearchProfessionals(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	searchQuery := fmt.Sprintf("%%%s%%", query)
	var professionals []models.Professional
	if err := db.DB.Preload("User").Preload("Category").
		Joins("JOIN users ON users.id = professionals.user_id").
		Joins("LEFT JOIN services ON services.professional_id = professionals.id").
		Where("users.name ILIKE ? OR professionals.bio ILIKE ? OR services.title ILIKE ?",
			searchQuery, searchQuery, searchQuery).
		Group("professionals.id").
		Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search professionals",
		})
	}

	for i := range professionals {
		professionals[i].User.Password = ""
		professionals[i].User.OTP = ""
	}

	return c.JSON(professionals)
}

// GetProfessionalDetails returns a professional with services, reviews and
// the computed availability badge.
func GetProfessionalDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var professional models.Professional
	if err := db.DB.Preload("User").
		Preload("Category").
		Preload("Services").
		Preload("Reviews").
		First(&professional, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}

	professional.User.Password = ""
	professional.User.OTP = ""

	return c.JSON(fiber.Map{
		"professional": professional,
		"availability": availabilityFor(&professional),
	})
}

// availabilityFor evaluates the badge, caching the result for a minute:
// the frontend re-polls on that cadence, so anything fresher is wasted
// work.
func availabilityFor(p *models.Professional) availability.Result {
	cacheKey := fmt.Sprintf("availability:%d", p.ID)

	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
			var res availability.Result
			if json.Unmarshal([]byte(cached), &res) == nil {
				return res
			}
		}
	}

	res := availability.Evaluate(p.Schedule, time.Now())

	if redis.Client != nil {
		if data, err := json.Marshal(res); err == nil {
			redis.Client.Set(redis.Ctx, cacheKey, data, time.Minute)
		}
	}

	return res
}

// UpdateProfessionalProfile edits the logged-in professional's profile.
func UpdateProfessionalProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var professional models.Professional
	if db.DB.Where("user_id = ?", userID).First(&professional).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional profile not found",
		})
	}

	type ProfileInput struct {
		Bio         *string `json:"bio"`
		PhoneNumber *string `json:"phone_number"`
		Address     *string `json:"address"`
		City        *string `json:"city"`
		Province    *string `json:"province"`
		CategoryID  *uint   `json:"category_id"`
	}
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Bio != nil {
		professional.Bio = *input.Bio
	}
	if input.PhoneNumber != nil {
		professional.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		professional.Address = *input.Address
	}
	if input.City != nil {
		professional.City = *input.City
	}
	if input.Province != nil {
		professional.Province = *input.Province
	}
	if input.CategoryID != nil {
		var category models.Category
		if err := db.DB.First(&category, *input.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		professional.CategoryID = *input.CategoryID
	}

	if err := db.DB.Save(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(professional)
}

// UploadProfessionalPhoto stores the uploaded photo in the temp dir and
// enqueues optimization; the Cloudinary URL lands on the profile once the
// worker is done.
func UploadProfessionalPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var professional models.Professional
	if db.DB.Where("user_id = ?", userID).First(&professional).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional profile not found",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get photo",
		})
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	dst := filepath.Join(uploadDir, fmt.Sprintf("photo_%d_%s%s",
		professional.ID, utils.GenerateUUID(), filepath.Ext(file.Filename)))

	if err := c.SaveFile(file, dst); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save photo",
		})
	}

	task, opts, err := jobs.NewImageOptimizeTask(professional.ID, dst)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to schedule photo processing",
		})
	}
	jobs.Dispatch(task, opts...)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Photo received, processing in background",
	})
}
