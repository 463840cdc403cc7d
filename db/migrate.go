package db

import (
	"fmt"
	"log"

	"github.com/oficiosya/oficios-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Category{},
		&models.Professional{},
		&models.Service{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRolesAndPermissions()
	seedCategories()

	fmt.Println("✅ Migrations applied successfully!")
}

func seedRolesAndPermissions() {
	roles := []models.Role{
		{Name: "admin", Description: "Back-office administrator with full access"},
		{Name: "professional", Description: "Registered tradesperson offering services"},
		{Name: "citizen", Description: "Citizen searching for professionals"},
	}

	for _, role := range roles {
		var existingRole models.Role
		if DB.Where("name = ?", role.Name).First(&existingRole).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	permissions := []models.Permission{
		{Name: "create_service", Description: "Publish services", Resource: "services", Action: "create"},
		{Name: "read_services", Description: "View services", Resource: "services", Action: "read"},
		{Name: "update_service", Description: "Update services", Resource: "services", Action: "update"},
		{Name: "delete_service", Description: "Delete services", Resource: "services", Action: "delete"},

		{Name: "update_professional", Description: "Edit professional profile", Resource: "professionals", Action: "update"},
		{Name: "update_schedule", Description: "Replace weekly schedule", Resource: "schedules", Action: "update"},

		{Name: "create_review", Description: "Publish reviews", Resource: "reviews", Action: "create"},
		{Name: "delete_review", Description: "Remove reviews", Resource: "reviews", Action: "delete"},

		{Name: "create_category", Description: "Create categories", Resource: "categories", Action: "create"},
		{Name: "update_category", Description: "Update categories", Resource: "categories", Action: "update"},
		{Name: "delete_category", Description: "Delete categories", Resource: "categories", Action: "delete"},

		{Name: "read_users", Description: "View user list", Resource: "users", Action: "read"},
		{Name: "update_user", Description: "Update user accounts", Resource: "users", Action: "update"},
		{Name: "delete_user", Description: "Delete user accounts", Resource: "users", Action: "delete"},
	}

	for _, permission := range permissions {
		var existingPermission models.Permission
		if DB.Where("name = ?", permission.Name).First(&existingPermission).RowsAffected == 0 {
			DB.Create(&permission)
		}
	}

	assignPermissions("admin", func() []models.Permission {
		var all []models.Permission
		DB.Find(&all)
		return all
	})

	assignPermissions("professional", func() []models.Permission {
		var perms []models.Permission
		DB.Where("name IN (?)", []string{
			"create_service", "read_services", "update_service", "delete_service",
			"update_professional", "update_schedule",
		}).Find(&perms)
		return perms
	})

	assignPermissions("citizen", func() []models.Permission {
		var perms []models.Permission
		DB.Where("name IN (?)", []string{"read_services", "create_review"}).Find(&perms)
		return perms
	})
}

func assignPermissions(roleName string, fetch func() []models.Permission) {
	var role models.Role
	if DB.Where("name = ?", roleName).First(&role).RowsAffected == 0 {
		return
	}
	perms := fetch()
	DB.Model(&role).Association("Permissions").Clear()
	DB.Model(&role).Association("Permissions").Append(perms)
}

func seedCategories() {
	categories := []models.Category{
		{Name: "Plomería", Slug: "plomeria", Description: "Instalaciones y reparaciones de agua y cloacas"},
		{Name: "Electricidad", Slug: "electricidad", Description: "Instalaciones eléctricas y reparaciones"},
		{Name: "Gas", Slug: "gas", Description: "Gasistas matriculados"},
		{Name: "Albañilería", Slug: "albanileria", Description: "Obras, refacciones y terminaciones"},
		{Name: "Pintura", Slug: "pintura", Description: "Pintura de interiores y exteriores"},
		{Name: "Carpintería", Slug: "carpinteria", Description: "Muebles y aberturas a medida"},
		{Name: "Jardinería", Slug: "jardineria", Description: "Mantenimiento de parques y jardines"},
	}

	for _, category := range categories {
		var existing models.Category
		if DB.Where("slug = ?", category.Slug).First(&existing).RowsAffected == 0 {
			DB.Create(&category)
		}
	}
}
