package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'produit' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Price       float64   `gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "produit"
}
