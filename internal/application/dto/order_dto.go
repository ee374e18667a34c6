package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden (venta o compra).
// UnitPrice es precio de venta en ventas y costo unitario en compras.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSalesOrderRequest alta de orden de venta.
type CreateSalesOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
	Tax        decimal.Decimal    `json:"tax"`
	Discount   decimal.Decimal    `json:"discount"`
	Notes      string             `json:"notes"`
}

// CreatePurchaseOrderRequest alta de orden de compra (sin descuento).
type CreatePurchaseOrderRequest struct {
	SupplierID string             `json:"supplier_id"`
	Items      []OrderItemRequest `json:"items"`
	Tax        decimal.Decimal    `json:"tax"`
	Notes      string             `json:"notes"`
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// SalesOrderResponse orden de venta en respuestas.
type SalesOrderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"order_number"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name,omitempty"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Discount     decimal.Decimal     `json:"discount"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	OrderDate    time.Time           `json:"order_date"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

// PurchaseOrderResponse orden de compra en respuestas.
type PurchaseOrderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"order_number"`
	SupplierID   string              `json:"supplier_id"`
	SupplierName string              `json:"supplier_name,omitempty"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	OrderDate    time.Time           `json:"order_date"`
	ReceivedDate *time.Time          `json:"received_date,omitempty"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	OrderID       string          `json:"order_id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
