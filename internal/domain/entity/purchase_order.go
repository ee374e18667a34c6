package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado adicional de PurchaseOrder (comparte pending/cancelled con SalesOrder).
const (
	OrderReceived = "received"
)

// PurchaseOrder cabecera de una orden de compra. Sin descuento.
type PurchaseOrder struct {
	ID           string
	OrderNumber  string // único, formato PO-<unix>
	SupplierID   string
	UserID       string
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Status       string // pending, received, cancelled
	Notes        string
	OrderDate    time.Time
	ReceivedDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseItem línea de una orden de compra.
type PurchaseItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitCost  decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}
