package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleModel mirrors the 'vente' table. CustomerID references user.id.
type SaleModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time

	LineItems []LineItemModel `gorm:"foreignKey:SaleID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "vente"
}

// LineItemModel mirrors the 'panier' table. SaleID references vente.id,
// ProductID references produit.id. UnitPrice is the price captured at sale
// time, deliberately denormalized from the produit row.
type LineItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	UnitPrice float64   `gorm:"type:numeric(12,2);not null"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LineItemModel) TableName() string {
	return "panier"
}
