package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// SalesOrderFilter filtros de listado de órdenes de venta.
type SalesOrderFilter struct {
	Status     string
	CustomerID string
}

// SalesOrderRepository define el puerto de persistencia para órdenes de venta.
// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE) para la transición de estado.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	CreateItem(item *entity.SalesItem) error
	GetByID(id string) (*entity.SalesOrder, error)
	GetForUpdate(id string) (*entity.SalesOrder, error)
	ListItems(orderID string) ([]*entity.SalesItem, error)
	List(filter SalesOrderFilter) ([]*entity.SalesOrder, error)
	UpdateStatus(id, status string) error
}
