package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating         float64      `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment        string       `json:"comment"`
	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `json:"professional" gorm:"foreignKey:ProfessionalID"`
	CustomerID     uint         `json:"customer_id"`
	Customer       User         `json:"customer" gorm:"foreignKey:CustomerID"`
	ServiceID      uint         `json:"service_id"`
	Service        Service      `json:"service" gorm:"foreignKey:ServiceID"`
	IsAnonymous    bool         `json:"is_anonymous" gorm:"default:false"`
}

// BeforeCreate hook to clamp rating into the 1.0-5.0 range
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}

	return nil
}

// Check if customer has already reviewed this professional's service
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("customer_id = ? AND professional_id = ? AND service_id = ? AND deleted_at IS NULL",
			r.CustomerID, r.ProfessionalID, r.ServiceID).
		Count(&count).Error

	return count > 0, err
}
