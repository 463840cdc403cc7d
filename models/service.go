package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	PriceFrom      float64      `json:"price_from"`
	PriceTo        float64      `json:"price_to"`
	CategoryID     uint         `json:"category_id"`
	Category       Category     `json:"category" gorm:"foreignKey:CategoryID"`
	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `json:"professional" gorm:"foreignKey:ProfessionalID"`
	IsActive       bool         `json:"is_active" gorm:"default:true"`
}

// BeforeSave keeps the price range ordered
func (s *Service) BeforeSave(tx *gorm.DB) error {
	if s.PriceTo != 0 && s.PriceTo < s.PriceFrom {
		s.PriceFrom, s.PriceTo = s.PriceTo, s.PriceFrom
	}
	return nil
}
