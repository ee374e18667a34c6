package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Invoice.
const (
	InvoiceUnpaid = "unpaid"
	InvoicePaid   = "paid"
)

// Invoice se genera 1:1 desde una orden de venta confirmada; los montos
// reflejan los de la orden.
type Invoice struct {
	ID            string
	InvoiceNumber string // único, formato INV-<unix>
	OrderID       string
	CustomerID    string
	Amount        decimal.Decimal // subtotal de la orden
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Status        string // unpaid, paid
	DueDate       *time.Time
	PaidDate      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
