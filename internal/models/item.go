package models

import "github.com/shopspring/decimal"

// Item represents a catalog entry. Items are read-only from the API's
// perspective; the catalog is seeded at startup.
type Item struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2)" validate:"required"`
	Description string          `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
}
