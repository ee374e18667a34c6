package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de SalesOrder. La transición pending -> confirmed ocurre exactamente
// una vez; cancelled solo es alcanzable desde pending y es terminal.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderCancelled = "cancelled"
)

// SalesOrder cabecera de una orden de venta.
// Invariante: Total = Subtotal + Tax - Discount; Subtotal = Σ(qty × unit_price).
type SalesOrder struct {
	ID          string
	OrderNumber string // único, formato SO-<unix>
	CustomerID  string
	UserID      string // usuario que creó la orden
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
	Status      string
	Notes       string
	OrderDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SalesItem línea de una orden de venta.
type SalesItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal // Quantity × UnitPrice
	CreatedAt time.Time
}
