package models

import (
	"gorm.io/gorm"
)

// Professional is a service provider profile, linked one-to-one with a user
// account. Schedule is stored as a JSONB document and replaced wholesale on
// profile edits; a nil schedule means "never configured", which the
// availability engine treats as always open so new professionals are not
// hidden from discovery.
type Professional struct {
	gorm.Model
	UserID      uint            `json:"user_id" gorm:"uniqueIndex"`
	User        User            `json:"user" gorm:"foreignKey:UserID"`
	CategoryID  uint            `json:"category_id"`
	Category    Category        `json:"category" gorm:"foreignKey:CategoryID"`
	Bio         string          `json:"bio"`
	PhoneNumber string          `json:"phone_number"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	Province    string          `json:"province"`
	PhotoURL    string          `json:"photo_url"`
	IsVerified  bool            `json:"is_verified" gorm:"default:false"`
	Schedule    *WeeklySchedule `json:"schedule,omitempty" gorm:"type:jsonb"`
	Services    []Service       `json:"services,omitempty" gorm:"foreignKey:ProfessionalID"`
	Reviews     []Review        `json:"reviews,omitempty" gorm:"foreignKey:ProfessionalID"`
}
