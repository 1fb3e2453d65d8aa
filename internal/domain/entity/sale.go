package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sale is a purchase transaction tying one user to a set of line items at a
// point in time. OccurredAt is the authoritative server-side point-of-sale
// timestamp, never client-supplied. A sale is immutable once created.
type Sale struct {
	ID         uuid.UUID
	CustomerID uuid.UUID // References the purchasing User. Required.
	OccurredAt time.Time
	LineItems  []*LineItem
	CreatedAt  time.Time
}

// LineItem is one product-and-quantity entry within a sale. UnitPrice is the
// product price captured at sale time; it stays fixed even if the catalogue
// price changes later.
type LineItem struct {
	ID        uuid.UUID
	SaleID    uuid.UUID
	ProductID uuid.UUID
	UnitPrice float64
	Quantity  int
	CreatedAt time.Time
}
