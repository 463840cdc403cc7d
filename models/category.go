package models

import (
	"gorm.io/gorm"
)

// Category is a trade category citizens browse (plomería, electricidad,
// gas, etc.).
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique"`
	Description string `json:"description"`
	Slug        string `json:"slug" gorm:"unique"`
}
