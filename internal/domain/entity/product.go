package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Product.
const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Product representa un producto del inventario.
// SKU es inmutable después de la creación; Stock nunca queda negativo
// (lo garantizan el motor de órdenes y el ajuste manual).
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo de compra
	Stock       int
	MinStock    int
	Unit        string // pcs, kg, ...
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
