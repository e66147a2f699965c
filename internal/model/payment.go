package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus is the client-reported fulfilment status of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusServed  PaymentStatus = "served"
)

// Payment is an entry in the append-only ledger. The price is whatever the
// client submitted; it is never recomputed from the cart.
type Payment struct {
	ID            uuid.UUID       `json:"_id" gorm:"type:char(36);primaryKey"`
	Email         string          `json:"email" gorm:"size:255;not null;index"`
	TransactionID string          `json:"transactionId" gorm:"size:255;index"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Quantity      int             `json:"quantity"`
	Date          time.Time       `json:"date"`
	Status        PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ItemNames     []string        `json:"itemNames" gorm:"type:text;serializer:json"`
	CartItems     []uuid.UUID     `json:"cartItems" gorm:"type:text;serializer:json"`
	MenuItems     []uuid.UUID     `json:"menuItems" gorm:"type:text;serializer:json"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
	return nil
}
