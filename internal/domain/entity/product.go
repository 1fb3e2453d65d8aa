package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalogue entry. Its lifecycle is independent from any sale:
// changing a product's price never touches line items created before the change.
type Product struct {
	ID          uuid.UUID
	Name        string
	Price       float64 // Current unit price, non-negative.
	Description string  // Optional free-form description.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
