package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	Status   string
	LowStock bool // stock <= min_stock
}

// ProductRepository define el puerto de persistencia para Product.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido
// sobre un repo atado a una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int) error
	Deactivate(id string) error
}
