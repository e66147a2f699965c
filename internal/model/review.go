package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a customer testimonial shown on the landing page.
type Review struct {
	ID        uuid.UUID `json:"_id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255"`
	Details   string    `json:"details" gorm:"type:text"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
