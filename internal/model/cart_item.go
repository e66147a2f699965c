package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is a pending line item owned by one user. Rows are hard-deleted on
// removal or settlement.
type CartItem struct {
	ID         uuid.UUID       `json:"_id" gorm:"type:char(36);primaryKey"`
	MenuItemID uuid.UUID       `json:"menuItemId" gorm:"type:char(36);index"`
	Name       string          `json:"name" gorm:"size:255"`
	Image      string          `json:"image" gorm:"size:1024"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Email      string          `json:"email" gorm:"size:255;not null;index"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
